// File: /catalog/data.go
package catalog

// Static reference data for the supported Pakistani destinations. Prices are
// in PKR; transport prices are one-way.

var destinations = []Destination{
	{ID: "hunza", Name: "Hunza Valley", Province: "Gilgit-Baltistan", Description: "A breathtaking mountain valley known for its stunning landscapes, ancient forts, and warm hospitality.", BestSeason: "April - October", MinBudget: 45000},
	{ID: "swat", Name: "Swat Valley", Province: "Khyber Pakhtunkhwa", Description: "Known as the Switzerland of Pakistan, Swat offers lush green valleys, crystal clear rivers, and rich Buddhist heritage sites.", BestSeason: "March - October", MinBudget: 25000},
	{ID: "skardu", Name: "Skardu", Province: "Gilgit-Baltistan", Description: "Gateway to the world's highest peaks, Skardu offers dramatic mountain scenery, ancient fortresses, and serene lakes.", BestSeason: "May - September", MinBudget: 55000},
	{ID: "murree", Name: "Murree", Province: "Punjab", Description: "A popular hill station near Islamabad, perfect for a quick getaway with colonial-era charm and pine-covered hills.", BestSeason: "Year-round", MinBudget: 15000},
	{ID: "lahore", Name: "Lahore", Province: "Punjab", Description: "The cultural heart of Pakistan, offering Mughal architecture, vibrant food scene, and rich history.", BestSeason: "October - March", MinBudget: 20000},
	{ID: "karachi", Name: "Karachi", Province: "Sindh", Description: "Pakistan's largest city and economic hub, offering beaches, historic sites, and diverse food culture.", BestSeason: "November - February", MinBudget: 18000},
	{ID: "islamabad", Name: "Islamabad", Province: "Federal Capital", Description: "The beautiful capital city with modern infrastructure, lush green Margalla Hills, and peaceful environment.", BestSeason: "Year-round", MinBudget: 15000},
	{ID: "naran-kaghan", Name: "Naran Kaghan", Province: "Khyber Pakhtunkhwa", Description: "A scenic valley in the Himalayas known for its lakes, waterfalls, and the famous Babusar Pass.", BestSeason: "May - September", MinBudget: 35000},
}

var transports = []Transport{
	{Type: "bus", From: "Islamabad", To: "Hunza", Price: 3500, Duration: "15-18 hours"},
	{Type: "flight", From: "Islamabad", To: "Gilgit", Price: 18000, Duration: "1 hour"},
	{Type: "bus", From: "Islamabad", To: "Swat", Price: 1500, Duration: "5-6 hours"},
	{Type: "van", From: "Islamabad", To: "Swat", Price: 1200, Duration: "5 hours"},
	{Type: "bus", From: "Islamabad", To: "Skardu", Price: 4000, Duration: "20-24 hours"},
	{Type: "flight", From: "Islamabad", To: "Skardu", Price: 20000, Duration: "1 hour"},
	{Type: "bus", From: "Islamabad", To: "Murree", Price: 500, Duration: "2 hours"},
	{Type: "bus", From: "Islamabad", To: "Lahore", Price: 1800, Duration: "5 hours"},
	{Type: "train", From: "Islamabad", To: "Lahore", Price: 1200, Duration: "4.5 hours"},
	{Type: "bus", From: "Islamabad", To: "Karachi", Price: 4500, Duration: "18 hours"},
	{Type: "flight", From: "Islamabad", To: "Karachi", Price: 15000, Duration: "2 hours"},
	{Type: "bus", From: "Islamabad", To: "Naran", Price: 2000, Duration: "8 hours"},
	{Type: "bus", From: "Lahore", To: "Karachi", Price: 3500, Duration: "14 hours"},
	{Type: "bus", From: "Lahore", To: "Islamabad", Price: 1800, Duration: "5 hours"},
	{Type: "bus", From: "Lahore", To: "Murree", Price: 2200, Duration: "6 hours"},
}

var hotels = []Hotel{
	{Name: "Eagle's Nest Guest House", Destination: "Hunza", Type: "guest-house", PricePerNight: 3500},
	{Name: "Hunza Embassy Hotel", Destination: "Hunza", Type: "budget", PricePerNight: 5000},
	{Name: "Serena Hunza", Destination: "Hunza", Type: "3-star", PricePerNight: 15000},
	{Name: "Swat Valley Guest House", Destination: "Swat", Type: "guest-house", PricePerNight: 2500},
	{Name: "Rock City Resort", Destination: "Swat", Type: "budget", PricePerNight: 4000},
	{Name: "Swat Serena Hotel", Destination: "Swat", Type: "3-star", PricePerNight: 12000},
	{Name: "K2 View Guest House", Destination: "Skardu", Type: "guest-house", PricePerNight: 4000},
	{Name: "Shangrila Resort", Destination: "Skardu", Type: "budget", PricePerNight: 8000},
	{Name: "Skardu Serena", Destination: "Skardu", Type: "3-star", PricePerNight: 18000},
	{Name: "Pine View Guest House", Destination: "Murree", Type: "guest-house", PricePerNight: 2000},
	{Name: "Pearl Continental Bhurban", Destination: "Murree", Type: "budget", PricePerNight: 6000},
	{Name: "Lockwood Hotel", Destination: "Murree", Type: "3-star", PricePerNight: 10000},
	{Name: "Lahore Backpackers", Destination: "Lahore", Type: "guest-house", PricePerNight: 1500},
	{Name: "Avari Towers", Destination: "Lahore", Type: "budget", PricePerNight: 8000},
	{Name: "Pearl Continental Lahore", Destination: "Lahore", Type: "3-star", PricePerNight: 15000},
	{Name: "Karachi Guest Inn", Destination: "Karachi", Type: "guest-house", PricePerNight: 2000},
	{Name: "Beach Luxury Hotel", Destination: "Karachi", Type: "budget", PricePerNight: 7000},
	{Name: "Pearl Continental Karachi", Destination: "Karachi", Type: "3-star", PricePerNight: 16000},
	{Name: "Islamabad Guest House", Destination: "Islamabad", Type: "guest-house", PricePerNight: 2500},
	{Name: "Islamabad Hotel", Destination: "Islamabad", Type: "budget", PricePerNight: 6000},
	{Name: "Serena Islamabad", Destination: "Islamabad", Type: "3-star", PricePerNight: 20000},
	{Name: "Naran Guest House", Destination: "Naran Kaghan", Type: "guest-house", PricePerNight: 3000},
	{Name: "Pine Park Hotel", Destination: "Naran Kaghan", Type: "budget", PricePerNight: 5500},
	{Name: "PTDC Naran", Destination: "Naran Kaghan", Type: "3-star", PricePerNight: 9000},
}

var activities = []Activity{
	{Name: "Eagle's Nest Viewpoint", Destination: "Hunza", Type: "sightseeing", Price: 0, Duration: "2 hours"},
	{Name: "Baltit Fort Visit", Destination: "Hunza", Type: "cultural", Price: 700, Duration: "2 hours"},
	{Name: "Attabad Lake Boating", Destination: "Hunza", Type: "adventure", Price: 1500, Duration: "3 hours"},
	{Name: "Passu Cones Trek", Destination: "Hunza", Type: "adventure", Price: 500, Duration: "4 hours"},
	{Name: "Hunza Traditional Meal", Destination: "Hunza", Type: "food", Price: 800, Duration: "1.5 hours"},
	{Name: "Malam Jabba Skiing", Destination: "Swat", Type: "adventure", Price: 2000, Duration: "4 hours"},
	{Name: "Mingora Bazaar Tour", Destination: "Swat", Type: "cultural", Price: 0, Duration: "2 hours"},
	{Name: "Buddhist Ruins Visit", Destination: "Swat", Type: "cultural", Price: 500, Duration: "3 hours"},
	{Name: "Fizagat Park", Destination: "Swat", Type: "sightseeing", Price: 200, Duration: "2 hours"},
	{Name: "Shangrila Resort Visit", Destination: "Skardu", Type: "sightseeing", Price: 500, Duration: "3 hours"},
	{Name: "Upper Kachura Lake", Destination: "Skardu", Type: "adventure", Price: 1000, Duration: "4 hours"},
	{Name: "Deosai Plains Day Trip", Destination: "Skardu", Type: "adventure", Price: 8000, Duration: "8 hours"},
	{Name: "Skardu Fort Trek", Destination: "Skardu", Type: "cultural", Price: 300, Duration: "3 hours"},
	{Name: "Mall Road Walk", Destination: "Murree", Type: "sightseeing", Price: 0, Duration: "2 hours"},
	{Name: "Pindi Point Cable Car", Destination: "Murree", Type: "adventure", Price: 600, Duration: "1 hour"},
	{Name: "Patriata Chair Lift", Destination: "Murree", Type: "adventure", Price: 800, Duration: "2 hours"},
	{Name: "Badshahi Mosque Visit", Destination: "Lahore", Type: "religious", Price: 0, Duration: "1.5 hours"},
	{Name: "Lahore Fort Tour", Destination: "Lahore", Type: "cultural", Price: 500, Duration: "3 hours"},
	{Name: "Food Street Experience", Destination: "Lahore", Type: "food", Price: 1500, Duration: "2 hours"},
	{Name: "Shalimar Gardens", Destination: "Lahore", Type: "sightseeing", Price: 200, Duration: "2 hours"},
	{Name: "Clifton Beach Evening", Destination: "Karachi", Type: "sightseeing", Price: 0, Duration: "2 hours"},
	{Name: "Quaid's Mausoleum", Destination: "Karachi", Type: "cultural", Price: 0, Duration: "1.5 hours"},
	{Name: "Port Grand Dining", Destination: "Karachi", Type: "food", Price: 2000, Duration: "2 hours"},
	{Name: "Mohatta Palace Museum", Destination: "Karachi", Type: "cultural", Price: 300, Duration: "2 hours"},
	{Name: "Faisal Mosque Visit", Destination: "Islamabad", Type: "religious", Price: 0, Duration: "1.5 hours"},
	{Name: "Daman-e-Koh Viewpoint", Destination: "Islamabad", Type: "sightseeing", Price: 0, Duration: "2 hours"},
	{Name: "Trail 5 Hiking", Destination: "Islamabad", Type: "adventure", Price: 0, Duration: "3 hours"},
	{Name: "Lok Virsa Museum", Destination: "Islamabad", Type: "cultural", Price: 200, Duration: "2 hours"},
	{Name: "Lake Saiful Muluk Trip", Destination: "Naran Kaghan", Type: "adventure", Price: 3000, Duration: "5 hours"},
	{Name: "Lulusar Lake Visit", Destination: "Naran Kaghan", Type: "sightseeing", Price: 2000, Duration: "4 hours"},
	{Name: "Babusar Pass Drive", Destination: "Naran Kaghan", Type: "adventure", Price: 4000, Duration: "6 hours"},
	{Name: "Lalazar Meadows", Destination: "Naran Kaghan", Type: "sightseeing", Price: 1500, Duration: "3 hours"},
}
