package override

import "github.com/leadpilot/sector-cli/internal/model"

// builtinOverrides is the curated safety net: companies the registry either
// misclassifies (holdings, foreign groups) or cannot see at all. Records
// with an address are treated as ground truth and short-circuit the
// cascade. Keys are display names; normalization happens at table build.
var builtinOverrides = map[string]model.OverrideRecord{
	// US / global tech
	"APPLE":      {Sector: "Tech / Software", OfficialName: "APPLE INC.", Address: "Cupertino, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"GOOGLE":     {Sector: "Tech / Software", OfficialName: "ALPHABET INC.", Address: "Mountain View, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"MICROSOFT":  {Sector: "Tech / Software", OfficialName: "MICROSOFT CORP", Address: "Redmond, WA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"AMAZON":     {Sector: "Tech / Software", OfficialName: "AMAZON.COM INC", Address: "Seattle, WA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"META":       {Sector: "Tech / Software", OfficialName: "META PLATFORMS", Address: "Menlo Park, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"ADOBE":      {Sector: "Tech / Software", OfficialName: "ADOBE INC.", Address: "San Jose, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"SALESFORCE": {Sector: "Tech / Software", OfficialName: "SALESFORCE", Address: "San Francisco, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"SPOTIFY":    {Sector: "Tech / Software", OfficialName: "SPOTIFY TECHNOLOGY", Address: "Stockholm (Sweden)", Region: "Monde", Headcount: "5 000+ salariés"},
	"UBER":       {Sector: "Tech / Software", OfficialName: "UBER TECHNOLOGIES", Address: "San Francisco, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"AIRBNB":     {Sector: "Tech / Software", OfficialName: "AIRBNB INC.", Address: "San Francisco, CA (USA)", Region: "Monde", Headcount: "5 000+ salariés"},
	"NVIDIA":     {Sector: "Tech / Software", OfficialName: "NVIDIA CORP", Address: "Santa Clara, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"ZOOM":       {Sector: "Tech / Software", OfficialName: "ZOOM VIDEO COMMUNICATIONS", Address: "San Jose, CA (USA)", Region: "Monde", Headcount: "5 000+ salariés"},
	"SLACK":      {Sector: "Tech / Software", OfficialName: "SALESFORCE (SLACK)", Address: "San Francisco, CA (USA)", Region: "Monde", Headcount: "1 000+ salariés"},
	"SAMSUNG":    {Sector: "Tech / Software", OfficialName: "SAMSUNG ELECTRONICS", Address: "Suwon (South Korea)", Region: "Monde", Headcount: "10 000+ salariés"},
	"XIAOMI":     {Sector: "Tech / Software", OfficialName: "XIAOMI CORP", Address: "Beijing (China)", Region: "Monde", Headcount: "10 000+ salariés"},
	"OPPO":       {Sector: "Tech / Software", OfficialName: "OPPO ELECTRONICS", Address: "Dongguan (China)", Region: "Monde", Headcount: "10 000+ salariés"},
	"HUAWEI":     {Sector: "Tech / Software", OfficialName: "HUAWEI TECHNOLOGIES", Address: "Shenzhen (China)", Region: "Monde", Headcount: "10 000+ salariés"},
	"ONEPLUS":    {Sector: "Tech / Software", OfficialName: "ONEPLUS TECHNOLOGY", Address: "Shenzhen (China)", Region: "Monde", Headcount: "5 000+ salariés"},
	"VISIATIV":   {Sector: "Tech / Software", OfficialName: "VISIATIV", Address: "Charbonnières-les-Bains (France)", Region: "Auvergne-Rhône-Alpes", Headcount: "1 000+ salariés"},
	"AMOOBI":     {Sector: "Tech / Software", OfficialName: "AMOOBI", Address: "N/A (International)", Region: "Monde", Headcount: "10-50 salariés"},

	// Media / telecom
	"NETFLIX":          {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "NETFLIX INC.", Address: "Los Gatos, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"DISNEY":           {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "THE WALT DISNEY COMPANY", Address: "Burbank, CA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"NINTENDO":         {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "NINTENDO CO., LTD", Address: "Kyoto (Japan)", Region: "Monde", Headcount: "5 000+ salariés"},
	"ORANGE":           {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "ORANGE SA", Address: "Issy-les-Moulineaux (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"SFR":              {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "SFR", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"FREE":             {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "ILIAD (FREE)", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"ILIAD":            {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "ILIAD (FREE)", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"BOUYGUES TELECOM": {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "BOUYGUES TELECOM", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"TDF":              {Sector: "Communication / Media & Entertainment / Telecom", OfficialName: "TDF", Address: "Montrouge (France)", Region: "Île-de-France", Headcount: "1 000+ salariés"},

	// Construction
	"BOUYGUES": {Sector: "Construction", OfficialName: "BOUYGUES SA", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},

	// Luxury
	"LVMH":                 {Sector: "Luxury", OfficialName: "LVMH MOET HENNESSY", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"CHRISTIAN DIOR":       {Sector: "Luxury", OfficialName: "CHRISTIAN DIOR SE", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"LOUIS VUITTON":        {Sector: "Luxury", OfficialName: "LOUIS VUITTON MALLETIER", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"CHRISTIAN LOUBOUTIN":  {Sector: "Luxury", OfficialName: "CHRISTIAN LOUBOUTIN", Address: "Paris (France)", Region: "Île-de-France", Headcount: "1 000+ salariés"},
	"CHANEL":               {Sector: "Luxury", OfficialName: "CHANEL SAS", Address: "Neuilly-sur-Seine (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"HERMES":               {Sector: "Luxury", OfficialName: "HERMES INTERNATIONAL", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"GUCCI":                {Sector: "Luxury", OfficialName: "GUCCI", Address: "Florence (Italy)", Region: "Monde", Headcount: "10 000+ salariés"},
	"PRADA":                {Sector: "Luxury", OfficialName: "PRADA SPA", Address: "Milan (Italy)", Region: "Monde", Headcount: "10 000+ salariés"},
	"LONGCHAMP":            {Sector: "Luxury", OfficialName: "LONGCHAMP SAS", Address: "Paris (France)", Region: "Île-de-France", Headcount: "1 000+ salariés"},

	// Consulting / IT services (named competitors)
	"CAPGEMINI": {Sector: "Consulting / IT Services", OfficialName: "CAPGEMINI SE", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", IsCompetitor: true},
	"KPMG":      {Sector: "Consulting / IT Services", OfficialName: "KPMG S.A", Address: "Paris La Défense (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", IsCompetitor: true},
	"DELOITTE":  {Sector: "Consulting / IT Services", OfficialName: "DELOITTE SAS", Address: "Paris La Défense (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", IsCompetitor: true},
	"EY":        {Sector: "Consulting / IT Services", OfficialName: "ERNST & YOUNG", Address: "Paris La Défense (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", IsCompetitor: true},
	"PWC":       {Sector: "Consulting / IT Services", OfficialName: "PWC FRANCE", Address: "Neuilly-sur-Seine (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", IsCompetitor: true},
	"ACCENTURE": {Sector: "Consulting / IT Services", OfficialName: "ACCENTURE", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", IsCompetitor: true},

	// Banking
	"BNP PARIBAS":      {Sector: "Banking", OfficialName: "BNP PARIBAS", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", Identifier: "662042449"},
	"SOCIETE GENERALE": {Sector: "Banking", OfficialName: "SOCIETE GENERALE", Address: "Paris La Défense (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", Identifier: "552120222"},

	// Retail / grands magasins / supermarkets
	"GALERIES LAFAYETTE": {Sector: "Retail", OfficialName: "GALERIES LAFAYETTE", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"PRINTEMPS":          {Sector: "Retail", OfficialName: "PRINTEMPS", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"CARREFOUR":          {Sector: "Retail", OfficialName: "CARREFOUR SA", Address: "Massy (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"AUCHAN":             {Sector: "Retail", OfficialName: "AUCHAN RETAIL", Address: "Croix (France)", Region: "Hauts-de-France", Headcount: "10 000+ salariés"},
	"LECLERC":            {Sector: "Retail", OfficialName: "E.LECLERC", Address: "Ivry-sur-Seine (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"INTERMARCHE":        {Sector: "Retail", OfficialName: "ITM ENTREPRISES", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"LIDL":               {Sector: "Retail", OfficialName: "LIDL STIFTUNG", Address: "Neckarsulm (Germany)", Region: "Monde", Headcount: "10 000+ salariés"},
	"ALDI":               {Sector: "Retail", OfficialName: "ALDI EINKAUF", Address: "Essen (Germany)", Region: "Monde", Headcount: "10 000+ salariés"},
	"NETTO":              {Sector: "Retail", OfficialName: "NETTO MARKEN-DISCOUNT", Address: "Germany", Region: "Monde", Headcount: "5 000+ salariés"},
	"ACTION":             {Sector: "Retail", OfficialName: "ACTION B.V.", Address: "Zwaagdijk (Netherlands)", Region: "Monde", Headcount: "10 000+ salariés"},
	"DECATHLON":          {Sector: "Retail", OfficialName: "DECATHLON SE", Address: "Villeneuve-d'Ascq (France)", Region: "Hauts-de-France", Headcount: "10 000+ salariés"},
	"MONOPRIX":           {Sector: "Retail", OfficialName: "MONOPRIX", Address: "Clichy (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"NIKE":               {Sector: "Retail", OfficialName: "NIKE INC.", Address: "Beaverton, OR (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"SERFI INTERNATIONAL": {Sector: "Retail", OfficialName: "SERFI INTERNATIONAL", Address: "Nice (France)", Region: "Provence-Alpes-Côte d'Azur", Headcount: "20-49 salariés"},

	// Automotive / industry
	"TESLA":               {Sector: "Manufacturing / Industry", OfficialName: "TESLA INC.", Address: "Austin, TX (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"BMW":                 {Sector: "Manufacturing / Industry", OfficialName: "BMW AG", Address: "Munich (Germany)", Region: "Monde", Headcount: "10 000+ salariés"},
	"MERCEDES":            {Sector: "Manufacturing / Industry", OfficialName: "MERCEDES-BENZ GROUP", Address: "Stuttgart (Germany)", Region: "Monde", Headcount: "10 000+ salariés"},
	"TOYOTA":              {Sector: "Manufacturing / Industry", OfficialName: "TOYOTA MOTOR CORP", Address: "Toyota City (Japan)", Region: "Monde", Headcount: "10 000+ salariés"},
	"VOLKSWAGEN":          {Sector: "Manufacturing / Industry", OfficialName: "VOLKSWAGEN AG", Address: "Wolfsburg (Germany)", Region: "Monde", Headcount: "10 000+ salariés"},
	"PHILIPS":             {Sector: "Manufacturing / Industry", OfficialName: "KONINKLIJKE PHILIPS", Address: "Amsterdam (Netherlands)", Region: "Monde", Headcount: "10 000+ salariés"},
	"SAFRAN":              {Sector: "Manufacturing / Industry", OfficialName: "SAFRAN SA", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"SAFRAN AERO BOOSTERS": {Sector: "Manufacturing / Industry", OfficialName: "SAFRAN AERO BOOSTERS", Address: "Herstal (Belgium)", Region: "Monde", Headcount: "1 000+ salariés"},
	"SYMBIO":              {Sector: "Manufacturing / Industry", OfficialName: "SYMBIO", Address: "Vénissieux (France)", Region: "Auvergne-Rhône-Alpes", Headcount: "500+ salariés"},

	// Food / beverages
	"COCA COLA":     {Sector: "Food / Beverages", OfficialName: "THE COCA-COLA COMPANY", Address: "Atlanta, GA (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"PEPSI":         {Sector: "Food / Beverages", OfficialName: "PEPSICO INC.", Address: "Harrison, NY (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"DANONE":        {Sector: "Food / Beverages", OfficialName: "DANONE", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés", Identifier: "552032534"},
	"PERNOD RICARD": {Sector: "Food / Beverages", OfficialName: "PERNOD RICARD", Address: "Paris (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},

	// Misc fixes accumulated from user feedback
	"PFIZER":   {Sector: "Pharmaceutics", OfficialName: "PFIZER INC.", Address: "New York, NY (USA)", Region: "Monde", Headcount: "10 000+ salariés"},
	"LA POSTE": {Sector: "Transportation, Logistics & Storage", OfficialName: "LA POSTE", Address: "Issy-les-Moulineaux (France)", Region: "Île-de-France", Headcount: "10 000+ salariés"},
	"APRIL":    {Sector: "Insurance / Mutual Health Insurance", OfficialName: "APRIL", Address: "Lyon (France)", Region: "Auvergne-Rhône-Alpes", Headcount: "1 000+ salariés"},
}

// builtinAliases maps hand-curated misspellings and spelling variants to
// their canonical override entry.
var builtinAliases = map[string]string{
	"FACEBOOK":             "META",
	"AIR BNB":              "AIRBNB",
	"INTERMARCHÉ":          "INTERMARCHE",
	"GROUPE LA POSTE":      "LA POSTE",
	"SAFRAN AERO BOSOTERS": "SAFRAN AERO BOOSTERS",
	"SERFIGROUP":           "SERFI INTERNATIONAL",
	"SERFI GROUP":          "SERFI INTERNATIONAL",
	"ERNST & YOUNG":        "EY",
	"ERNST AND YOUNG":      "EY",
	"SOCGEN":               "SOCIETE GENERALE",
	"SOCIÉTÉ GÉNÉRALE":     "SOCIETE GENERALE",
}
