package taxonomy

import "fmt"

// deptToRegion maps a French department code to its administrative region.
// Overseas departments (97x) use three-character codes.
var deptToRegion = map[string]string{
	"01": "Auvergne-Rhône-Alpes", "02": "Hauts-de-France", "03": "Auvergne-Rhône-Alpes",
	"04": "Provence-Alpes-Côte d'Azur", "05": "Provence-Alpes-Côte d'Azur",
	"06": "Provence-Alpes-Côte d'Azur", "07": "Auvergne-Rhône-Alpes", "08": "Grand Est",
	"09": "Occitanie", "10": "Grand Est",
	"11": "Occitanie", "12": "Occitanie", "13": "Provence-Alpes-Côte d'Azur",
	"14": "Normandie", "15": "Auvergne-Rhône-Alpes",
	"16": "Nouvelle-Aquitaine", "17": "Nouvelle-Aquitaine", "18": "Centre-Val de Loire",
	"19": "Nouvelle-Aquitaine", "21": "Bourgogne-Franche-Comté",
	"22": "Bretagne", "23": "Nouvelle-Aquitaine", "24": "Nouvelle-Aquitaine",
	"25": "Bourgogne-Franche-Comté", "26": "Auvergne-Rhône-Alpes",
	"27": "Normandie", "28": "Centre-Val de Loire", "29": "Bretagne",
	"2A": "Corse", "2B": "Corse",
	"30": "Occitanie", "31": "Occitanie", "32": "Occitanie",
	"33": "Nouvelle-Aquitaine", "34": "Occitanie",
	"35": "Bretagne", "36": "Centre-Val de Loire", "37": "Centre-Val de Loire",
	"38": "Auvergne-Rhône-Alpes", "39": "Bourgogne-Franche-Comté",
	"40": "Nouvelle-Aquitaine", "41": "Centre-Val de Loire", "42": "Auvergne-Rhône-Alpes",
	"43": "Auvergne-Rhône-Alpes", "44": "Pays de la Loire",
	"45": "Centre-Val de Loire", "46": "Occitanie", "47": "Nouvelle-Aquitaine",
	"48": "Occitanie", "49": "Pays de la Loire",
	"50": "Normandie", "51": "Grand Est", "52": "Grand Est",
	"53": "Pays de la Loire", "54": "Grand Est",
	"55": "Grand Est", "56": "Bretagne", "57": "Grand Est",
	"58": "Bourgogne-Franche-Comté", "59": "Hauts-de-France",
	"60": "Hauts-de-France", "61": "Normandie", "62": "Hauts-de-France",
	"63": "Auvergne-Rhône-Alpes", "64": "Nouvelle-Aquitaine",
	"65": "Occitanie", "66": "Occitanie", "67": "Grand Est",
	"68": "Grand Est", "69": "Auvergne-Rhône-Alpes",
	"70": "Bourgogne-Franche-Comté", "71": "Bourgogne-Franche-Comté",
	"72": "Pays de la Loire", "73": "Auvergne-Rhône-Alpes", "74": "Auvergne-Rhône-Alpes",
	"75": "Île-de-France", "76": "Normandie", "77": "Île-de-France",
	"78": "Île-de-France", "79": "Nouvelle-Aquitaine",
	"80": "Hauts-de-France", "81": "Occitanie", "82": "Occitanie",
	"83": "Provence-Alpes-Côte d'Azur", "84": "Provence-Alpes-Côte d'Azur",
	"85": "Pays de la Loire", "86": "Nouvelle-Aquitaine", "87": "Nouvelle-Aquitaine",
	"88": "Grand Est", "89": "Bourgogne-Franche-Comté",
	"90": "Bourgogne-Franche-Comté", "91": "Île-de-France", "92": "Île-de-France",
	"93": "Île-de-France", "94": "Île-de-France",
	"95": "Île-de-France", "971": "Guadeloupe", "972": "Martinique",
	"973": "Guyane", "974": "La Réunion", "976": "Mayotte",
}

// RegionForPostalCode infers the administrative region from a postal code.
// Returns "Autre" for unusable input and "France (<dept>)" for departments
// not in the table.
func RegionForPostalCode(postalCode string) string {
	if len(postalCode) < 2 {
		return "Autre"
	}

	dept := postalCode[:2]
	if (dept == "97" || dept == "98") && len(postalCode) >= 3 {
		dept = postalCode[:3]
	}

	if region, ok := deptToRegion[dept]; ok {
		return region
	}
	return fmt.Sprintf("France (%s)", dept)
}

// headcountBrackets maps INSEE tranche d'effectifs codes to their labels.
var headcountBrackets = map[string]string{
	"NN": "Non renseigné",
	"00": "0 salarié",
	"01": "1 ou 2 salariés",
	"02": "3 à 5 salariés",
	"03": "6 à 9 salariés",
	"11": "10 à 19 salariés",
	"12": "20 à 49 salariés",
	"21": "50 à 99 salariés",
	"22": "100 à 199 salariés",
	"31": "200 à 249 salariés",
	"32": "250 à 499 salariés",
	"41": "500 à 999 salariés",
	"42": "1 000 à 1 999 salariés",
	"51": "2 000 à 4 999 salariés",
	"52": "5 000 à 9 999 salariés",
	"53": "10 000 salariés et plus",
}

// HeadcountLabel converts an INSEE headcount bracket code to its label.
// Unknown codes are returned as-is; empty codes map to "Non renseigné".
func HeadcountLabel(code string) string {
	if code == "" {
		return "Non renseigné"
	}
	if label, ok := headcountBrackets[code]; ok {
		return label
	}
	return code
}
