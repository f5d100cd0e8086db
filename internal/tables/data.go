package tables

import "github.com/allsafeASM/lookup/internal/models"

var countryCodes = []models.CountryCodeEntry{
	{Code: "+1", Country: "United States/Canada", Timezone: "America/New_York", Region: "North America"},
	{Code: "+91", Country: "India", Timezone: "Asia/Kolkata", Region: "South Asia"},
	{Code: "+44", Country: "United Kingdom", Timezone: "Europe/London", Region: "Europe"},
	{Code: "+86", Country: "China", Timezone: "Asia/Shanghai", Region: "East Asia"},
	{Code: "+81", Country: "Japan", Timezone: "Asia/Tokyo", Region: "East Asia"},
	{Code: "+49", Country: "Germany", Timezone: "Europe/Berlin", Region: "Europe"},
	{Code: "+33", Country: "France", Timezone: "Europe/Paris", Region: "Europe"},
	{Code: "+61", Country: "Australia", Timezone: "Australia/Sydney", Region: "Oceania"},
	{Code: "+55", Country: "Brazil", Timezone: "America/Sao_Paulo", Region: "South America"},
	{Code: "+7", Country: "Russia", Timezone: "Europe/Moscow", Region: "Europe/Asia"},
	{Code: "+82", Country: "South Korea", Timezone: "Asia/Seoul", Region: "East Asia"},
	{Code: "+39", Country: "Italy", Timezone: "Europe/Rome", Region: "Europe"},
	{Code: "+34", Country: "Spain", Timezone: "Europe/Madrid", Region: "Europe"},
	{Code: "+52", Country: "Mexico", Timezone: "America/Mexico_City", Region: "North America"},
	{Code: "+31", Country: "Netherlands", Timezone: "Europe/Amsterdam", Region: "Europe"},
	{Code: "+46", Country: "Sweden", Timezone: "Europe/Stockholm", Region: "Europe"},
	{Code: "+47", Country: "Norway", Timezone: "Europe/Oslo", Region: "Europe"},
	{Code: "+48", Country: "Poland", Timezone: "Europe/Warsaw", Region: "Europe"},
	{Code: "+41", Country: "Switzerland", Timezone: "Europe/Zurich", Region: "Europe"},
	{Code: "+65", Country: "Singapore", Timezone: "Asia/Singapore", Region: "Southeast Asia"},
	{Code: "+60", Country: "Malaysia", Timezone: "Asia/Kuala_Lumpur", Region: "Southeast Asia"},
	{Code: "+62", Country: "Indonesia", Timezone: "Asia/Jakarta", Region: "Southeast Asia"},
	{Code: "+63", Country: "Philippines", Timezone: "Asia/Manila", Region: "Southeast Asia"},
	{Code: "+66", Country: "Thailand", Timezone: "Asia/Bangkok", Region: "Southeast Asia"},
	{Code: "+84", Country: "Vietnam", Timezone: "Asia/Ho_Chi_Minh", Region: "Southeast Asia"},
	{Code: "+92", Country: "Pakistan", Timezone: "Asia/Karachi", Region: "South Asia"},
	{Code: "+880", Country: "Bangladesh", Timezone: "Asia/Dhaka", Region: "South Asia"},
	{Code: "+94", Country: "Sri Lanka", Timezone: "Asia/Colombo", Region: "South Asia"},
	{Code: "+971", Country: "UAE", Timezone: "Asia/Dubai", Region: "Middle East"},
	{Code: "+966", Country: "Saudi Arabia", Timezone: "Asia/Riyadh", Region: "Middle East"},
	{Code: "+20", Country: "Egypt", Timezone: "Africa/Cairo", Region: "Africa"},
	{Code: "+27", Country: "South Africa", Timezone: "Africa/Johannesburg", Region: "Africa"},
	{Code: "+234", Country: "Nigeria", Timezone: "Africa/Lagos", Region: "Africa"},
	{Code: "+254", Country: "Kenya", Timezone: "Africa/Nairobi", Region: "Africa"},
}

var carriers = map[string][]string{
	"+91": {"Jio", "Airtel", "Vi (Vodafone Idea)", "BSNL"},
	"+1":  {"AT&T", "Verizon", "T-Mobile", "Sprint"},
	"+44": {"EE", "Vodafone UK", "O2", "Three"},
	"+86": {"China Mobile", "China Unicom", "China Telecom"},
	"+81": {"NTT Docomo", "SoftBank", "au by KDDI"},
	"+49": {"Telekom", "Vodafone DE", "O2 Germany"},
	"+33": {"Orange", "SFR", "Bouygues Telecom", "Free Mobile"},
	"+61": {"Telstra", "Optus", "Vodafone AU"},
	"+55": {"Vivo", "Claro", "TIM", "Oi"},
	"+7":  {"MTS", "Beeline", "MegaFon", "Tele2"},
}

var indiaCentroid = models.Coordinates{Lat: 20.5937, Lng: 78.9629}

var indiaSubRegions = []models.SubRegionEntry{
	{Prefix: "60", Name: "Multiple Circles", Lat: 20.5937, Lng: 78.9629},
	{Prefix: "61", Name: "Maharashtra/Gujarat", Lat: 19.0760, Lng: 72.8777},
	{Prefix: "62", Name: "Tamil Nadu/Karnataka", Lat: 13.0827, Lng: 80.2707},
	{Prefix: "63", Name: "Andhra Pradesh/Telangana", Lat: 17.3850, Lng: 78.4867},
	{Prefix: "70", Name: "Delhi", Lat: 28.6139, Lng: 77.2090},
	{Prefix: "71", Name: "Haryana", Lat: 29.0588, Lng: 76.0856},
	{Prefix: "72", Name: "Punjab", Lat: 31.1471, Lng: 75.3412},
	{Prefix: "73", Name: "Rajasthan", Lat: 27.0238, Lng: 74.2179},
	{Prefix: "74", Name: "Rajasthan", Lat: 26.9124, Lng: 75.7873},
	{Prefix: "75", Name: "Uttar Pradesh", Lat: 26.8467, Lng: 80.9462},
	{Prefix: "76", Name: "Madhya Pradesh", Lat: 23.2599, Lng: 77.4126},
	{Prefix: "77", Name: "Maharashtra", Lat: 19.7515, Lng: 75.7139},
	{Prefix: "78", Name: "Gujarat", Lat: 22.2587, Lng: 71.1924},
	{Prefix: "79", Name: "Gujarat", Lat: 23.0225, Lng: 72.5714},
	{Prefix: "80", Name: "Karnataka", Lat: 12.9716, Lng: 77.5946},
	{Prefix: "81", Name: "Tamil Nadu", Lat: 13.0827, Lng: 80.2707},
	{Prefix: "82", Name: "Kerala", Lat: 10.8505, Lng: 76.2711},
	{Prefix: "83", Name: "Andhra Pradesh", Lat: 15.9129, Lng: 79.7400},
	{Prefix: "84", Name: "Telangana", Lat: 17.3850, Lng: 78.4867},
	{Prefix: "85", Name: "West Bengal", Lat: 22.9868, Lng: 87.8550},
	{Prefix: "86", Name: "Bihar", Lat: 25.0961, Lng: 85.3131},
	{Prefix: "87", Name: "Odisha", Lat: 20.9517, Lng: 85.0985},
	{Prefix: "88", Name: "Assam", Lat: 26.2006, Lng: 92.9376},
	{Prefix: "89", Name: "Jharkhand", Lat: 23.6102, Lng: 85.2799},
	{Prefix: "90", Name: "Chhattisgarh", Lat: 21.2787, Lng: 81.8661},
	{Prefix: "91", Name: "Uttarakhand", Lat: 30.0668, Lng: 79.0193},
	{Prefix: "92", Name: "Himachal Pradesh", Lat: 31.1048, Lng: 77.1734},
	{Prefix: "93", Name: "Jammu & Kashmir", Lat: 33.7782, Lng: 76.5762},
	{Prefix: "94", Name: "Goa", Lat: 15.2993, Lng: 74.1240},
	{Prefix: "95", Name: "Northeast India", Lat: 25.4670, Lng: 91.3662},
	{Prefix: "96", Name: "Multiple Circles", Lat: 20.5937, Lng: 78.9629},
	{Prefix: "97", Name: "Multiple Circles", Lat: 20.5937, Lng: 78.9629},
	{Prefix: "98", Name: "Multiple Circles", Lat: 20.5937, Lng: 78.9629},
	{Prefix: "99", Name: "Multiple Circles", Lat: 20.5937, Lng: 78.9629},
}

// capital or largest-city coordinates per dialing code
var centroids = map[string]models.Coordinates{
	"+1":  {Lat: 40.7128, Lng: -74.0060},
	"+44": {Lat: 51.5074, Lng: -0.1278},
	"+86": {Lat: 39.9042, Lng: 116.4074},
	"+81": {Lat: 35.6762, Lng: 139.6503},
	"+49": {Lat: 52.5200, Lng: 13.4050},
	"+33": {Lat: 48.8566, Lng: 2.3522},
	"+61": {Lat: -33.8688, Lng: 151.2093},
	"+55": {Lat: -23.5505, Lng: -46.6333},
	"+7":  {Lat: 55.7558, Lng: 37.6173},
}

var disposableDomains = []string{
	"tempmail.com",
	"guerrillamail.com",
	"10minutemail.com",
	"throwaway.email",
	"mailinator.com",
	"temp-mail.org",
	"fakeinbox.com",
	"trashmail.com",
	"yopmail.com",
	"getnada.com",
	"maildrop.cc",
	"tempail.com",
	"dispostable.com",
}

var platforms = []models.Platform{
	{Name: "Twitter/X", URLTemplate: "https://twitter.com/{username}"},
	{Name: "Instagram", URLTemplate: "https://instagram.com/{username}"},
	{Name: "GitHub", URLTemplate: "https://github.com/{username}"},
	{Name: "Reddit", URLTemplate: "https://reddit.com/user/{username}"},
	{Name: "TikTok", URLTemplate: "https://tiktok.com/@{username}"},
	{Name: "LinkedIn", URLTemplate: "https://linkedin.com/in/{username}"},
	{Name: "YouTube", URLTemplate: "https://youtube.com/@{username}"},
	{Name: "Twitch", URLTemplate: "https://twitch.tv/{username}"},
}

var sampleGeo = []models.GeoInfo{
	{Country: "United States", City: "New York", ISP: "Comcast", Location: &models.Coordinates{Lat: 40.7128, Lng: -74.0060}, Timezone: "America/New_York"},
	{Country: "United Kingdom", City: "London", ISP: "BT", Location: &models.Coordinates{Lat: 51.5074, Lng: -0.1278}, Timezone: "Europe/London"},
	{Country: "Germany", City: "Berlin", ISP: "Deutsche Telekom", Location: &models.Coordinates{Lat: 52.5200, Lng: 13.4050}, Timezone: "Europe/Berlin"},
	{Country: "India", City: "Mumbai", ISP: "Jio", Location: &models.Coordinates{Lat: 19.0760, Lng: 72.8777}, Timezone: "Asia/Kolkata"},
	{Country: "Japan", City: "Tokyo", ISP: "NTT", Location: &models.Coordinates{Lat: 35.6762, Lng: 139.6503}, Timezone: "Asia/Tokyo"},
}
