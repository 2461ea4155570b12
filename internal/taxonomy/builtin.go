package taxonomy

// Builtin returns a fresh copy of the builtin sector table. Keyword lists
// mix French and English because inputs come from both French registry
// labels and international web snippets.
func Builtin() []Sector {
	return []Sector{
		{
			Name:        "Agriculture / Livestock / Seafood",
			NAFPrefixes: []string{"01", "02", "03"},
			Keywords: []string{
				"agriculture", "élevage", "pêche", "agricole", "ferme", "bio",
				"tracteur", "champs", "vigne", "viticulture", "horticulture",
				"maraichage", "bétail", "aquaculture", "farming", "livestock",
				"seafood", "crops",
			},
		},
		{
			Name:        "Banking",
			NAFPrefixes: []string{"641"},
			Keywords: []string{
				"banque", "crédit", "bancaire", "compte", "livret", "cb", "bank",
				"banking", "loan", "credit", "bnp", "société générale",
				"crédit agricole", "bpce",
			},
		},
		{
			Name:        "Chemicals",
			NAFPrefixes: []string{"20"},
			Keywords: []string{
				"chimie", "laboratoire", "molécules", "réactif", "polymère",
				"plastique", "chimique", "petrochemical", "chemicals", "chemistry",
				"lab", "solvay", "arkema", "air liquide",
			},
		},
		{
			Name:        "Communication / Media & Entertainment / Telecom",
			NAFPrefixes: []string{"59", "60", "61", "63"},
			Keywords: []string{
				"télécom", "média", "publicité", "fibre", "internet", "presse",
				"journal", "tv", "radio", "marketing", "agence", "communication",
				"entertainment", "telecom", "broadcasting", "advertising", "media",
				"orange", "sfr", "bouygues", "free", "publicis", "havas",
			},
		},
		{
			Name:        "Construction",
			NAFPrefixes: []string{"41", "42", "43"},
			Keywords: []string{
				"btp", "construction", "bâtiment", "génie civil", "infrastructure",
				"travaux", "architecture", "maçonnerie", "électicité", "plomberie",
				"architect", "builder", "contractor", "civil", "renovation",
				"vinci", "eiffage", "bouygues construction",
			},
		},
		{
			Name:        "Consulting / IT Services",
			NAFPrefixes: []string{"62", "631", "582", "702", "692", "7112", "712", "732", "74"},
			Keywords: []string{
				"conseil", "consulting", "esn", "stratégie", "audit", "expertise",
				"ingénierie", "rub", "management", "digital", "transformation",
				"it services", "système d'information", "data", "advisory",
				"capgemini", "deloitte", "kpmg", "pwc", "mckinsey", "bain", "bcg",
				"accenture", "sogeti", "sopra", "wavestone", "alteca", "umanis",
			},
		},
		{
			Name:        "CPG (Consumer Packaged Goods)",
			NAFPrefixes: []string{"204"},
			Keywords: []string{
				"fmcg", "biens de consommation", "hygiène", "produits ménagers",
				"cosmétique", "beauté", "parfum", "shampoing", "savon", "lessive",
				"cpg", "consumer goods", "l'oréal", "procter", "gamble", "unilever",
				"danone", "nestlé", "henkel",
			},
		},
		{
			Name:        "Education",
			NAFPrefixes: []string{"85"},
			Keywords: []string{
				"éducation", "formation", "école", "université", "training",
				"learning", "elearning", "edtech", "campus", "formation continue",
				"school", "university", "academy", "college",
			},
		},
		{
			Name:        "Energy / Utilities",
			NAFPrefixes: []string{"35", "36", "37", "38", "39"},
			Keywords: []string{
				"énergie", "électricité", "gaz", "eau", "déchets", "environnement",
				"recyclage", "solaire", "éolien", "nucléaire", "oil", "petrol",
				"renewables", "green", "carbon", "hydrogen", "edf", "engie",
				"total", "veolia", "suez",
			},
		},
		{
			Name:        "Finance / Real Estate",
			NAFPrefixes: []string{"64", "66", "68"},
			Keywords: []string{
				"finance", "immobilier", "investissement", "gestion d'actifs",
				"courtier", "syndic", "promoteur", "real estate", "realty",
				"property", "logement", "immo", "wealth", "fintech", "payment",
				"trading", "crypto", "blockchain", "vc", "private equity", "fund",
				"foncia", "nexity",
			},
		},
		{
			Name:        "Food / Beverages",
			NAFPrefixes: []string{"10", "11"},
			Keywords: []string{
				"agroalimentaire", "aliments", "boissons", "food", "beverage",
				"vin", "spiritueux", "bière", "champagne", "nutrition", "snack",
				"dairy", "laitier", "viande", "boulangerie", "traiteur",
			},
		},
		{
			Name:        "Healthcare / Medical Services",
			NAFPrefixes: []string{"86", "87", "88"},
			Keywords: []string{
				"santé", "clinique", "hôpital", "soins", "médecin", "infirmier",
				"ehpad", "médical", "chirurgie", "patient", "healthcare", "medical",
				"hospital", "clinic", "care", "doctor", "diagnostic", "radiologie",
				"dentaire", "kine", "ramsay", "elsan",
			},
		},
		{
			Name:        "Hotels / Restaurants",
			NAFPrefixes: []string{"55", "56"},
			Keywords: []string{
				"hôtel", "restaurant", "tourisme", "hébergement", "camping",
				"voyage", "bar", "café", "brasserie", "cuisine", "hotel",
				"hospitality", "tourism", "catering", "accor", "club med",
				"sodexo", "elior",
			},
		},
		{
			Name:        "Insurance / Mutual Health Insurance",
			NAFPrefixes: []string{"65"},
			Keywords: []string{
				"assurance", "mutuelle", "courtage", "assureur", "prévoyance",
				"risques", "insurance", "underwriting", "axa", "allianz",
				"generali", "maif", "macif", "groupama", "malakoff",
			},
		},
		{
			Name:        "Luxury",
			NAFPrefixes: []string{"141", "142", "151", "152"},
			Keywords: []string{
				"luxe", "prestige", "haute couture", "joaillerie", "maroquinerie",
				"palace", "luxury", "fashion", "jewelry", "premium", "high-end",
				"mode", "vêtement", "chaussures", "shoes", "wear", "apparel",
				"lvmh", "kering", "hermès", "chanel", "dior", "vuitton", "gucci",
				"prada",
			},
		},
		{
			Name: "Manufacturing / Industry",
			NAFPrefixes: []string{
				"13", "14", "15", "16", "17", "22", "23", "24", "25", "26", "27",
				"28", "29", "30", "31", "32", "33",
			},
			Keywords: []string{
				"industrie", "usine", "fabrication", "mécanique", "métallurgie",
				"plasturgie", "assemblage", "production", "machine", "outil",
				"industriel", "manufacturing", "industry", "factory", "plant",
				"metal", "machinery", "automotive", "aéronautique", "aerospace",
				"defense", "textile", "imprimerie", "packaging", "saint-gobain",
				"schneider", "legrand", "michelin",
			},
		},
		{
			Name:        "Not For Profit",
			NAFPrefixes: []string{"94", "91"},
			Keywords: []string{
				"association", "fondation", "ong", "non-profit", "charity",
				"bénévole", "social", "humanitaire", "syndicat", "union", "club",
				"croix rouge", "secours populaire",
			},
		},
		{
			Name:        "Pharmaceutics",
			NAFPrefixes: []string{"21"},
			Keywords: []string{
				"pharmacie", "médicament", "biotech", "laboratoire", "vaccin",
				"recherche", "molécule", "thérapie", "pharmaceutical", "pharma",
				"drug", "biotechnology", "medicine", "lifescience", "sanofi",
				"servier", "pfizer", "moderna",
			},
		},
		{
			Name:        "Public administration & government",
			NAFPrefixes: []string{"84"},
			Keywords: []string{
				"mairie", "préfecture", "ministère", "collectivité", "public",
				"etat", "government", "administration", "caisse", "caf", "urssaf",
				"pole emploi", "france travail", "ambassade", "consulat",
			},
		},
		{
			Name:        "Retail",
			NAFPrefixes: []string{"45", "46", "47"},
			Keywords: []string{
				"commerce", "vente", "magasin", "boutique", "supermarché",
				"distribution", "retail", "store", "shop", "e-commerce",
				"marketplace", "grossiste", "grand magasin", "shopping", "mall",
				"outlet", "franchise", "carrefour", "auchan", "leclerc",
				"decathlon", "fnac", "darty", "amazon", "cdiscount",
			},
		},
		{
			Name:        "Tech / Software",
			NAFPrefixes: []string{"582", "6201", "6312", "262"},
			Keywords: []string{
				"logiciel", "saas", "tech", "software", "application", "ia",
				"intelligence artificielle", "cloud", "développement", "web",
				"app", "cybersecurity", "platform", "technology", "developer",
				"electronics", "hardware", "computer", "start-up", "google",
				"microsoft", "apple", "meta", "aws", "salesforce", "sap", "oracle",
			},
		},
		{
			Name:        "Transportation, Logistics & Storage",
			NAFPrefixes: []string{"49", "50", "51", "52", "53"},
			Keywords: []string{
				"transport", "logistique", "fret", "livraison", "messagerie",
				"entrepôt", "supply chain", "shipping", "transit", "colis",
				"airline", "aérien", "avion", "bateau", "compagnie aérienne",
				"rail", "ferroviaire", "maritime", "port", "sncf", "air france",
				"maersk", "cma cgm", "dhl", "fedex", "ups",
			},
		},
	}
}
