package geo

import "service-area-api/internal/domain"

// zipPrefixTable maps a 3-digit ZIP prefix to the approximate center of the
// largest population center it serves. One centroid can stand in for ZIP codes
// tens of miles apart; the table is meant for coverage hints, not dispatch.
// Read-only after package init.
var zipPrefixTable = map[string]domain.Coordinates{
	// New England
	"010": {Lat: 42.10, Lon: -72.59}, // Springfield, MA
	"011": {Lat: 42.10, Lon: -72.59},
	"012": {Lat: 42.45, Lon: -73.25}, // Pittsfield
	"015": {Lat: 42.26, Lon: -71.80}, // Worcester
	"016": {Lat: 42.26, Lon: -71.80},
	"017": {Lat: 42.28, Lon: -71.42}, // Framingham
	"018": {Lat: 42.48, Lon: -71.15}, // Woburn
	"019": {Lat: 42.47, Lon: -70.95}, // Lynn
	"020": {Lat: 42.08, Lon: -71.02}, // Brockton
	"021": {Lat: 42.36, Lon: -71.06}, // Boston
	"022": {Lat: 42.36, Lon: -71.06},
	"023": {Lat: 42.08, Lon: -71.02},
	"024": {Lat: 42.45, Lon: -71.23}, // Lexington
	"027": {Lat: 41.64, Lon: -70.93}, // New Bedford
	"028": {Lat: 41.82, Lon: -71.41}, // Providence
	"029": {Lat: 41.82, Lon: -71.41},
	"030": {Lat: 42.99, Lon: -71.46}, // Manchester, NH
	"031": {Lat: 42.99, Lon: -71.46},
	"038": {Lat: 43.07, Lon: -70.76}, // Portsmouth
	"040": {Lat: 43.66, Lon: -70.26}, // Portland, ME
	"041": {Lat: 43.66, Lon: -70.26},
	"054": {Lat: 44.48, Lon: -73.21}, // Burlington
	"060": {Lat: 41.76, Lon: -72.68}, // Hartford
	"061": {Lat: 41.76, Lon: -72.68},
	"064": {Lat: 41.31, Lon: -72.92}, // New Haven
	"065": {Lat: 41.31, Lon: -72.92},
	"066": {Lat: 41.19, Lon: -73.20}, // Bridgeport
	"068": {Lat: 41.05, Lon: -73.54}, // Stamford
	"069": {Lat: 41.05, Lon: -73.54},

	// New Jersey
	"070": {Lat: 40.74, Lon: -74.17}, // Newark
	"071": {Lat: 40.74, Lon: -74.17},
	"072": {Lat: 40.66, Lon: -74.21}, // Elizabeth
	"073": {Lat: 40.73, Lon: -74.08}, // Jersey City
	"074": {Lat: 40.92, Lon: -74.17}, // Paterson
	"075": {Lat: 40.92, Lon: -74.17},
	"076": {Lat: 40.89, Lon: -74.04}, // Hackensack
	"077": {Lat: 40.35, Lon: -74.06}, // Red Bank
	"078": {Lat: 40.88, Lon: -74.56}, // Dover
	"080": {Lat: 39.93, Lon: -75.03}, // Cherry Hill
	"081": {Lat: 39.93, Lon: -75.12}, // Camden
	"085": {Lat: 40.22, Lon: -74.76}, // Trenton
	"086": {Lat: 40.22, Lon: -74.76},
	"088": {Lat: 40.49, Lon: -74.45}, // New Brunswick

	// New York
	"100": {Lat: 40.71, Lon: -74.01}, // Manhattan
	"101": {Lat: 40.71, Lon: -74.01},
	"102": {Lat: 40.71, Lon: -74.01},
	"103": {Lat: 40.58, Lon: -74.15}, // Staten Island
	"104": {Lat: 40.84, Lon: -73.87}, // Bronx
	"105": {Lat: 41.03, Lon: -73.76}, // White Plains
	"106": {Lat: 41.03, Lon: -73.76},
	"107": {Lat: 40.93, Lon: -73.90}, // Yonkers
	"110": {Lat: 40.73, Lon: -73.79}, // Queens
	"111": {Lat: 40.74, Lon: -73.94}, // Long Island City
	"112": {Lat: 40.65, Lon: -73.95}, // Brooklyn
	"113": {Lat: 40.76, Lon: -73.83}, // Flushing
	"114": {Lat: 40.70, Lon: -73.79}, // Jamaica
	"115": {Lat: 40.71, Lon: -73.62}, // Hempstead
	"117": {Lat: 40.77, Lon: -73.53}, // Hicksville
	"119": {Lat: 40.92, Lon: -72.66}, // Riverhead
	"120": {Lat: 42.65, Lon: -73.75}, // Albany
	"122": {Lat: 42.65, Lon: -73.75},
	"130": {Lat: 43.05, Lon: -76.15}, // Syracuse
	"132": {Lat: 43.05, Lon: -76.15},
	"140": {Lat: 42.89, Lon: -78.88}, // Buffalo
	"142": {Lat: 42.89, Lon: -78.88},
	"144": {Lat: 43.16, Lon: -77.61}, // Rochester
	"146": {Lat: 43.16, Lon: -77.61},

	// Pennsylvania, Delaware
	"150": {Lat: 40.44, Lon: -79.99}, // Pittsburgh
	"152": {Lat: 40.44, Lon: -79.99},
	"165": {Lat: 42.13, Lon: -80.09}, // Erie
	"170": {Lat: 40.27, Lon: -76.88}, // Harrisburg
	"171": {Lat: 40.27, Lon: -76.88},
	"175": {Lat: 40.04, Lon: -76.31}, // Lancaster
	"176": {Lat: 40.04, Lon: -76.31},
	"180": {Lat: 40.60, Lon: -75.47}, // Allentown
	"181": {Lat: 40.60, Lon: -75.47},
	"185": {Lat: 41.41, Lon: -75.66}, // Scranton
	"190": {Lat: 39.95, Lon: -75.17}, // Philadelphia
	"191": {Lat: 39.95, Lon: -75.17},
	"194": {Lat: 40.12, Lon: -75.34}, // Norristown
	"197": {Lat: 39.74, Lon: -75.55}, // Wilmington, DE
	"198": {Lat: 39.74, Lon: -75.55},

	// DC, Maryland, Virginia, West Virginia
	"200": {Lat: 38.90, Lon: -77.04}, // Washington
	"202": {Lat: 38.90, Lon: -77.04},
	"203": {Lat: 38.90, Lon: -77.04},
	"204": {Lat: 38.90, Lon: -77.04},
	"205": {Lat: 38.90, Lon: -77.04},
	"206": {Lat: 38.62, Lon: -76.94}, // Waldorf
	"207": {Lat: 39.10, Lon: -76.85}, // Laurel
	"208": {Lat: 38.98, Lon: -77.10}, // Bethesda
	"209": {Lat: 38.99, Lon: -77.03}, // Silver Spring
	"210": {Lat: 39.29, Lon: -76.61}, // Baltimore
	"211": {Lat: 39.29, Lon: -76.61},
	"212": {Lat: 39.29, Lon: -76.61},
	"220": {Lat: 38.85, Lon: -77.31}, // Fairfax
	"221": {Lat: 38.85, Lon: -77.31},
	"222": {Lat: 38.88, Lon: -77.10}, // Arlington
	"223": {Lat: 38.80, Lon: -77.05}, // Alexandria
	"230": {Lat: 37.54, Lon: -77.44}, // Richmond
	"232": {Lat: 37.54, Lon: -77.44},
	"233": {Lat: 36.85, Lon: -76.29}, // Norfolk
	"234": {Lat: 36.85, Lon: -76.29},
	"235": {Lat: 36.85, Lon: -76.29},
	"236": {Lat: 37.09, Lon: -76.47}, // Newport News
	"240": {Lat: 37.27, Lon: -79.94}, // Roanoke
	"241": {Lat: 37.27, Lon: -79.94},
	"250": {Lat: 38.35, Lon: -81.63}, // Charleston, WV
	"253": {Lat: 38.35, Lon: -81.63},

	// Carolinas
	"270": {Lat: 36.07, Lon: -79.79}, // Greensboro
	"272": {Lat: 36.07, Lon: -79.79},
	"274": {Lat: 36.07, Lon: -79.79},
	"275": {Lat: 35.78, Lon: -78.64}, // Raleigh
	"276": {Lat: 35.78, Lon: -78.64},
	"277": {Lat: 35.99, Lon: -78.90}, // Durham
	"280": {Lat: 35.23, Lon: -80.84}, // Charlotte
	"282": {Lat: 35.23, Lon: -80.84},
	"283": {Lat: 35.05, Lon: -78.88}, // Fayetteville
	"284": {Lat: 34.23, Lon: -77.94}, // Wilmington, NC
	"287": {Lat: 35.60, Lon: -82.55}, // Asheville
	"288": {Lat: 35.60, Lon: -82.55},
	"290": {Lat: 34.00, Lon: -81.03}, // Columbia
	"292": {Lat: 34.00, Lon: -81.03},
	"294": {Lat: 32.78, Lon: -79.93}, // Charleston, SC
	"296": {Lat: 34.85, Lon: -82.40}, // Greenville

	// Georgia, Florida
	"300": {Lat: 33.75, Lon: -84.39}, // Atlanta
	"301": {Lat: 33.75, Lon: -84.39},
	"302": {Lat: 33.75, Lon: -84.39},
	"303": {Lat: 33.75, Lon: -84.39},
	"310": {Lat: 32.84, Lon: -83.63}, // Macon
	"312": {Lat: 32.84, Lon: -83.63},
	"313": {Lat: 32.08, Lon: -81.09}, // Savannah
	"314": {Lat: 32.08, Lon: -81.09},
	"318": {Lat: 32.46, Lon: -84.99}, // Columbus, GA
	"319": {Lat: 32.46, Lon: -84.99},
	"320": {Lat: 30.33, Lon: -81.66}, // Jacksonville
	"322": {Lat: 30.33, Lon: -81.66},
	"323": {Lat: 30.44, Lon: -84.28}, // Tallahassee
	"324": {Lat: 30.16, Lon: -85.66}, // Panama City
	"325": {Lat: 30.42, Lon: -87.22}, // Pensacola
	"326": {Lat: 29.65, Lon: -82.32}, // Gainesville
	"327": {Lat: 28.54, Lon: -81.38}, // Orlando
	"328": {Lat: 28.54, Lon: -81.38},
	"329": {Lat: 28.08, Lon: -80.61}, // Melbourne
	"330": {Lat: 25.76, Lon: -80.19}, // Miami
	"331": {Lat: 25.76, Lon: -80.19},
	"332": {Lat: 25.76, Lon: -80.19},
	"333": {Lat: 26.12, Lon: -80.14}, // Fort Lauderdale
	"334": {Lat: 26.72, Lon: -80.05}, // West Palm Beach
	"335": {Lat: 27.95, Lon: -82.46}, // Tampa
	"336": {Lat: 27.95, Lon: -82.46},
	"337": {Lat: 27.77, Lon: -82.64}, // St. Petersburg
	"338": {Lat: 28.04, Lon: -81.95}, // Lakeland
	"339": {Lat: 26.64, Lon: -81.87}, // Fort Myers
	"341": {Lat: 26.14, Lon: -81.79}, // Naples
	"342": {Lat: 27.34, Lon: -82.53}, // Sarasota
	"344": {Lat: 29.19, Lon: -82.14}, // Ocala
	"347": {Lat: 28.54, Lon: -81.38},
	"349": {Lat: 27.45, Lon: -80.33}, // Fort Pierce

	// Alabama, Tennessee, Mississippi, Kentucky
	"350": {Lat: 33.52, Lon: -86.80}, // Birmingham
	"352": {Lat: 33.52, Lon: -86.80},
	"356": {Lat: 34.73, Lon: -86.59}, // Huntsville
	"358": {Lat: 34.73, Lon: -86.59},
	"360": {Lat: 32.37, Lon: -86.30}, // Montgomery
	"361": {Lat: 32.37, Lon: -86.30},
	"365": {Lat: 30.69, Lon: -88.04}, // Mobile
	"366": {Lat: 30.69, Lon: -88.04},
	"370": {Lat: 36.16, Lon: -86.78}, // Nashville
	"372": {Lat: 36.16, Lon: -86.78},
	"373": {Lat: 35.05, Lon: -85.31}, // Chattanooga
	"374": {Lat: 35.05, Lon: -85.31},
	"377": {Lat: 35.96, Lon: -83.92}, // Knoxville
	"379": {Lat: 35.96, Lon: -83.92},
	"380": {Lat: 35.15, Lon: -90.05}, // Memphis
	"381": {Lat: 35.15, Lon: -90.05},
	"390": {Lat: 32.30, Lon: -90.18}, // Jackson, MS
	"392": {Lat: 32.30, Lon: -90.18},
	"395": {Lat: 30.37, Lon: -89.09}, // Gulfport
	"400": {Lat: 38.25, Lon: -85.76}, // Louisville
	"402": {Lat: 38.25, Lon: -85.76},
	"405": {Lat: 38.04, Lon: -84.50}, // Lexington

	// Ohio, Indiana, Michigan
	"430": {Lat: 39.96, Lon: -83.00}, // Columbus
	"432": {Lat: 39.96, Lon: -83.00},
	"436": {Lat: 41.65, Lon: -83.54}, // Toledo
	"440": {Lat: 41.50, Lon: -81.69}, // Cleveland
	"441": {Lat: 41.50, Lon: -81.69},
	"442": {Lat: 41.08, Lon: -81.52}, // Akron
	"443": {Lat: 41.08, Lon: -81.52},
	"450": {Lat: 39.10, Lon: -84.51}, // Cincinnati
	"452": {Lat: 39.10, Lon: -84.51},
	"453": {Lat: 39.76, Lon: -84.19}, // Dayton
	"454": {Lat: 39.76, Lon: -84.19},
	"460": {Lat: 39.77, Lon: -86.16}, // Indianapolis
	"462": {Lat: 39.77, Lon: -86.16},
	"463": {Lat: 41.59, Lon: -87.35}, // Gary
	"465": {Lat: 41.68, Lon: -86.25}, // South Bend
	"468": {Lat: 41.08, Lon: -85.14}, // Fort Wayne
	"480": {Lat: 42.49, Lon: -83.14}, // Royal Oak
	"481": {Lat: 42.33, Lon: -83.05}, // Detroit
	"482": {Lat: 42.33, Lon: -83.05},
	"483": {Lat: 42.64, Lon: -83.29}, // Pontiac
	"484": {Lat: 43.01, Lon: -83.69}, // Flint
	"489": {Lat: 42.73, Lon: -84.56}, // Lansing
	"493": {Lat: 42.96, Lon: -85.67}, // Grand Rapids
	"495": {Lat: 42.96, Lon: -85.67},

	// Upper Midwest
	"500": {Lat: 41.59, Lon: -93.62}, // Des Moines
	"503": {Lat: 41.59, Lon: -93.62},
	"530": {Lat: 43.04, Lon: -87.91}, // Milwaukee
	"532": {Lat: 43.04, Lon: -87.91},
	"537": {Lat: 43.07, Lon: -89.40}, // Madison
	"550": {Lat: 44.95, Lon: -93.09}, // St. Paul
	"551": {Lat: 44.95, Lon: -93.09},
	"553": {Lat: 44.98, Lon: -93.27}, // Minneapolis
	"554": {Lat: 44.98, Lon: -93.27},
	"570": {Lat: 43.55, Lon: -96.73}, // Sioux Falls
	"571": {Lat: 43.55, Lon: -96.73},
	"580": {Lat: 46.88, Lon: -96.79}, // Fargo
	"581": {Lat: 46.88, Lon: -96.79},
	"590": {Lat: 45.78, Lon: -108.50}, // Billings
	"591": {Lat: 45.78, Lon: -108.50},

	// Illinois, Missouri, Kansas, Nebraska
	"600": {Lat: 42.06, Lon: -87.94}, // Chicago north suburbs
	"601": {Lat: 41.91, Lon: -88.13}, // Carol Stream
	"602": {Lat: 42.05, Lon: -87.69}, // Evanston
	"603": {Lat: 41.89, Lon: -87.78}, // Oak Park
	"604": {Lat: 41.55, Lon: -87.85}, // Chicago south suburbs
	"605": {Lat: 41.76, Lon: -88.32}, // Aurora
	"606": {Lat: 41.88, Lon: -87.63}, // Chicago
	"607": {Lat: 41.88, Lon: -87.63},
	"608": {Lat: 41.88, Lon: -87.63},
	"609": {Lat: 41.12, Lon: -87.86}, // Kankakee
	"610": {Lat: 42.27, Lon: -89.09}, // Rockford
	"611": {Lat: 42.27, Lon: -89.09},
	"616": {Lat: 40.69, Lon: -89.59}, // Peoria
	"617": {Lat: 40.48, Lon: -88.99}, // Bloomington, IL
	"620": {Lat: 38.62, Lon: -90.15}, // East St. Louis
	"625": {Lat: 39.78, Lon: -89.65}, // Springfield, IL
	"627": {Lat: 39.78, Lon: -89.65},
	"630": {Lat: 38.63, Lon: -90.20}, // St. Louis
	"631": {Lat: 38.63, Lon: -90.20},
	"640": {Lat: 39.10, Lon: -94.58}, // Kansas City, MO
	"641": {Lat: 39.10, Lon: -94.58},
	"652": {Lat: 38.95, Lon: -92.33}, // Columbia, MO
	"656": {Lat: 37.21, Lon: -93.29}, // Springfield, MO
	"658": {Lat: 37.21, Lon: -93.29},
	"660": {Lat: 39.11, Lon: -94.63}, // Kansas City, KS
	"661": {Lat: 39.11, Lon: -94.63},
	"662": {Lat: 39.02, Lon: -94.68}, // Shawnee Mission
	"664": {Lat: 39.05, Lon: -95.68}, // Topeka
	"666": {Lat: 39.05, Lon: -95.68},
	"670": {Lat: 37.69, Lon: -97.34}, // Wichita
	"672": {Lat: 37.69, Lon: -97.34},
	"680": {Lat: 41.26, Lon: -95.93}, // Omaha
	"681": {Lat: 41.26, Lon: -95.93},
	"685": {Lat: 40.81, Lon: -96.70}, // Lincoln

	// Louisiana, Arkansas, Oklahoma
	"700": {Lat: 29.95, Lon: -90.07}, // New Orleans
	"701": {Lat: 29.95, Lon: -90.07},
	"707": {Lat: 30.45, Lon: -91.15}, // Baton Rouge
	"708": {Lat: 30.45, Lon: -91.15},
	"710": {Lat: 32.53, Lon: -93.75}, // Shreveport
	"711": {Lat: 32.53, Lon: -93.75},
	"720": {Lat: 34.75, Lon: -92.29}, // Little Rock
	"722": {Lat: 34.75, Lon: -92.29},
	"730": {Lat: 35.47, Lon: -97.52}, // Oklahoma City
	"731": {Lat: 35.47, Lon: -97.52},
	"740": {Lat: 36.15, Lon: -95.99}, // Tulsa
	"741": {Lat: 36.15, Lon: -95.99},

	// Texas
	"750": {Lat: 33.02, Lon: -96.70}, // Plano
	"751": {Lat: 32.78, Lon: -96.80}, // Dallas
	"752": {Lat: 32.78, Lon: -96.80},
	"753": {Lat: 32.78, Lon: -96.80},
	"760": {Lat: 32.74, Lon: -97.11}, // Arlington
	"761": {Lat: 32.76, Lon: -97.33}, // Fort Worth
	"762": {Lat: 33.21, Lon: -97.13}, // Denton
	"767": {Lat: 31.55, Lon: -97.15}, // Waco
	"770": {Lat: 29.76, Lon: -95.37}, // Houston
	"772": {Lat: 29.76, Lon: -95.37},
	"773": {Lat: 30.31, Lon: -95.46}, // Conroe
	"774": {Lat: 29.58, Lon: -95.76}, // Richmond, TX
	"775": {Lat: 29.69, Lon: -95.21}, // Pasadena, TX
	"776": {Lat: 30.08, Lon: -94.13}, // Beaumont
	"777": {Lat: 30.08, Lon: -94.13},
	"779": {Lat: 28.80, Lon: -97.00}, // Victoria
	"780": {Lat: 29.42, Lon: -98.49}, // San Antonio
	"782": {Lat: 29.42, Lon: -98.49},
	"783": {Lat: 27.80, Lon: -97.40}, // Corpus Christi
	"784": {Lat: 27.80, Lon: -97.40},
	"785": {Lat: 26.20, Lon: -98.23}, // McAllen
	"786": {Lat: 30.27, Lon: -97.74}, // Austin
	"787": {Lat: 30.27, Lon: -97.74},
	"790": {Lat: 35.22, Lon: -101.83}, // Amarillo
	"791": {Lat: 35.22, Lon: -101.83},
	"793": {Lat: 33.58, Lon: -101.86}, // Lubbock
	"794": {Lat: 33.58, Lon: -101.86},
	"797": {Lat: 32.00, Lon: -102.08}, // Midland
	"799": {Lat: 31.76, Lon: -106.49}, // El Paso

	// Mountain
	"800": {Lat: 39.74, Lon: -104.99}, // Denver
	"801": {Lat: 39.74, Lon: -104.99},
	"802": {Lat: 39.74, Lon: -104.99},
	"803": {Lat: 40.01, Lon: -105.27}, // Boulder
	"805": {Lat: 40.59, Lon: -105.08}, // Fort Collins
	"808": {Lat: 38.83, Lon: -104.82}, // Colorado Springs
	"809": {Lat: 38.83, Lon: -104.82},
	"810": {Lat: 38.25, Lon: -104.61}, // Pueblo
	"820": {Lat: 41.14, Lon: -104.82}, // Cheyenne
	"836": {Lat: 43.62, Lon: -116.20}, // Boise
	"837": {Lat: 43.62, Lon: -116.20},
	"840": {Lat: 40.76, Lon: -111.89}, // Salt Lake City
	"841": {Lat: 40.76, Lon: -111.89},
	"843": {Lat: 41.22, Lon: -111.97}, // Ogden
	"844": {Lat: 41.22, Lon: -111.97},
	"846": {Lat: 40.23, Lon: -111.66}, // Provo
	"850": {Lat: 33.45, Lon: -112.07}, // Phoenix
	"852": {Lat: 33.42, Lon: -111.83}, // Mesa
	"853": {Lat: 33.54, Lon: -112.19}, // Glendale, AZ
	"856": {Lat: 32.22, Lon: -110.97}, // Tucson
	"857": {Lat: 32.22, Lon: -110.97},
	"860": {Lat: 35.20, Lon: -111.65}, // Flagstaff
	"870": {Lat: 35.08, Lon: -106.65}, // Albuquerque
	"871": {Lat: 35.08, Lon: -106.65},
	"875": {Lat: 35.69, Lon: -105.94}, // Santa Fe
	"880": {Lat: 32.32, Lon: -106.76}, // Las Cruces
	"889": {Lat: 36.17, Lon: -115.14}, // Las Vegas
	"890": {Lat: 36.17, Lon: -115.14},
	"891": {Lat: 36.17, Lon: -115.14},
	"894": {Lat: 39.53, Lon: -119.81}, // Reno
	"895": {Lat: 39.53, Lon: -119.81},

	// California
	"900": {Lat: 34.05, Lon: -118.25}, // Los Angeles
	"901": {Lat: 34.05, Lon: -118.25},
	"902": {Lat: 34.05, Lon: -118.25},
	"903": {Lat: 33.96, Lon: -118.35}, // Inglewood
	"904": {Lat: 34.02, Lon: -118.49}, // Santa Monica
	"905": {Lat: 33.84, Lon: -118.34}, // Torrance
	"906": {Lat: 33.98, Lon: -118.03}, // Whittier
	"907": {Lat: 33.77, Lon: -118.19}, // Long Beach
	"908": {Lat: 33.77, Lon: -118.19},
	"910": {Lat: 34.15, Lon: -118.14}, // Pasadena
	"911": {Lat: 34.15, Lon: -118.14},
	"912": {Lat: 34.14, Lon: -118.26}, // Glendale
	"913": {Lat: 34.19, Lon: -118.45}, // Van Nuys
	"914": {Lat: 34.19, Lon: -118.45},
	"915": {Lat: 34.18, Lon: -118.31}, // Burbank
	"916": {Lat: 34.17, Lon: -118.38}, // North Hollywood
	"917": {Lat: 34.09, Lon: -117.89}, // Covina
	"918": {Lat: 34.10, Lon: -118.13}, // Alhambra
	"919": {Lat: 32.64, Lon: -117.08}, // Chula Vista
	"920": {Lat: 33.12, Lon: -117.09}, // Escondido
	"921": {Lat: 32.72, Lon: -117.16}, // San Diego
	"922": {Lat: 33.83, Lon: -116.55}, // Palm Springs
	"923": {Lat: 34.11, Lon: -117.29}, // San Bernardino
	"924": {Lat: 34.11, Lon: -117.29},
	"925": {Lat: 33.95, Lon: -117.40}, // Riverside
	"926": {Lat: 33.75, Lon: -117.87}, // Santa Ana
	"927": {Lat: 33.75, Lon: -117.87},
	"928": {Lat: 33.84, Lon: -117.91}, // Anaheim
	"930": {Lat: 34.20, Lon: -119.18}, // Oxnard
	"931": {Lat: 34.42, Lon: -119.70}, // Santa Barbara
	"932": {Lat: 35.37, Lon: -119.02}, // Bakersfield
	"933": {Lat: 35.37, Lon: -119.02},
	"934": {Lat: 35.28, Lon: -120.66}, // San Luis Obispo
	"935": {Lat: 34.70, Lon: -118.14}, // Lancaster
	"936": {Lat: 36.74, Lon: -119.79}, // Fresno
	"937": {Lat: 36.74, Lon: -119.79},
	"939": {Lat: 36.68, Lon: -121.66}, // Salinas
	"940": {Lat: 37.56, Lon: -122.32}, // San Mateo
	"941": {Lat: 37.77, Lon: -122.42}, // San Francisco
	"943": {Lat: 37.44, Lon: -122.14}, // Palo Alto
	"944": {Lat: 37.56, Lon: -122.32},
	"945": {Lat: 37.80, Lon: -122.27}, // Oakland
	"946": {Lat: 37.80, Lon: -122.27},
	"947": {Lat: 37.87, Lon: -122.27}, // Berkeley
	"948": {Lat: 37.94, Lon: -122.35}, // Richmond, CA
	"949": {Lat: 37.97, Lon: -122.53}, // San Rafael
	"950": {Lat: 37.34, Lon: -121.89}, // San Jose
	"951": {Lat: 37.34, Lon: -121.89},
	"952": {Lat: 37.96, Lon: -121.29}, // Stockton
	"953": {Lat: 37.64, Lon: -121.00}, // Modesto
	"954": {Lat: 38.44, Lon: -122.71}, // Santa Rosa
	"956": {Lat: 38.58, Lon: -121.49}, // Sacramento
	"957": {Lat: 38.58, Lon: -121.49},
	"958": {Lat: 38.58, Lon: -121.49},
	"960": {Lat: 40.59, Lon: -122.39}, // Redding

	// Pacific
	"967": {Lat: 21.31, Lon: -157.86}, // Honolulu
	"968": {Lat: 21.31, Lon: -157.86},
	"970": {Lat: 45.52, Lon: -122.68}, // Portland, OR
	"971": {Lat: 45.52, Lon: -122.68},
	"972": {Lat: 45.52, Lon: -122.68},
	"973": {Lat: 44.94, Lon: -123.04}, // Salem
	"974": {Lat: 44.05, Lon: -123.09}, // Eugene
	"980": {Lat: 47.61, Lon: -122.20}, // Bellevue
	"981": {Lat: 47.61, Lon: -122.33}, // Seattle
	"982": {Lat: 47.98, Lon: -122.20}, // Everett
	"983": {Lat: 47.25, Lon: -122.44}, // Tacoma
	"984": {Lat: 47.25, Lon: -122.44},
	"985": {Lat: 47.04, Lon: -122.90}, // Olympia
	"986": {Lat: 45.64, Lon: -122.66}, // Vancouver, WA
	"990": {Lat: 47.66, Lon: -117.43}, // Spokane
	"992": {Lat: 47.66, Lon: -117.43},
	"995": {Lat: 61.22, Lon: -149.90}, // Anchorage
	"996": {Lat: 61.22, Lon: -149.90},
}
