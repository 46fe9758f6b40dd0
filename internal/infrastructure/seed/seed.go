// Package seed holds the fixed built-in data used to bootstrap an empty
// durable store and to serve the educational content. The values mirror the
// original CleanWave client's data sets.
package seed

import (
	"time"

	"github.com/cleanwave/cleanwave/internal/domain/entity"
)

func floatPtr(v float64) *float64 { return &v }

var seedUsers = []entity.User{
	{
		ID:              "1",
		Name:            "Ocean Guardians NGO",
		Email:           "contact@oceanguardians.org",
		Role:            entity.UserRoleNGO,
		Bio:             "Dedicated to protecting marine ecosystems through community-driven beach cleanups",
		Location:        "San Francisco, CA",
		EventsOrganized: 25,
		Avatar:          "https://images.pexels.com/photos/7456339/pexels-photo-7456339.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		ID:                  "2",
		Name:                "Alex Chen",
		Email:               "alex@example.com",
		Role:                entity.UserRoleParticipant,
		Bio:                 "Environmental enthusiast passionate about ocean conservation",
		Location:            "San Francisco, CA",
		EventsJoined:        12,
		TotalWasteCollected: 45.5,
		EcoScore:            850,
		Avatar:              "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=400",
		Certificates: []entity.Certificate{
			{
				ID:               "1",
				EventID:          "1",
				EventTitle:       "Golden Gate Beach Cleanup",
				ParticipantID:    "2",
				ParticipantName:  "Alex Chen",
				OrganizerID:      "1",
				OrganizerName:    "Ocean Guardians NGO",
				DateIssued:       "2024-11-25",
				WasteCollected:   floatPtr(15.5),
				CertificateType:  entity.CertificateParticipation,
				VerificationCode: "CW-2024-GG-001",
			},
		},
	},
	{
		ID:                  "3",
		Name:                "Maria Rodriguez",
		Email:               "maria@example.com",
		Role:                entity.UserRoleParticipant,
		Bio:                 "Marine biology student committed to preserving our beaches",
		Location:            "Monterey, CA",
		EventsJoined:        8,
		TotalWasteCollected: 32.1,
		EcoScore:            720,
		Avatar:              "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
}

var seedEvents = []entity.Event{
	{
		ID:              "1",
		Title:           "Golden Gate Beach Cleanup",
		Description:     "Join us for a comprehensive beach cleanup at Golden Gate Park. We'll provide all necessary equipment and refreshments. Perfect for families and individuals looking to make a positive impact.",
		Date:            "2024-12-15",
		Time:            "09:00",
		Location:        "Golden Gate Park Beach, San Francisco",
		Coordinates:     &entity.Coordinates{Lat: 37.7749, Lng: -122.4194},
		Organizer:       seedUsers[0],
		Participants:    []entity.User{seedUsers[1], seedUsers[2]},
		MaxParticipants: 50,
		Status:          entity.EventStatusUpcoming,
		ImageURL:        "https://images.pexels.com/photos/1770809/pexels-photo-1770809.jpeg?auto=compress&cs=tinysrgb&w=800",
		RequiredItems:   []string{"Gloves", "Reusable water bottle", "Hat", "Sunscreen"},
		EstimatedWaste:  floatPtr(100),
		CreatedAt:       time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:              "2",
		Title:           "Monterey Bay Restoration",
		Description:     "A special event focused on removing plastic waste from Monterey Bay. Marine biologists will be present to educate participants about local marine life.",
		Date:            "2024-12-22",
		Time:            "08:30",
		Location:        "Monterey Bay, Monterey",
		Coordinates:     &entity.Coordinates{Lat: 36.6177, Lng: -121.9166},
		Organizer:       seedUsers[0],
		Participants:    []entity.User{seedUsers[2]},
		MaxParticipants: 30,
		Status:          entity.EventStatusUpcoming,
		ImageURL:        "https://images.pexels.com/photos/1174732/pexels-photo-1174732.jpeg?auto=compress&cs=tinysrgb&w=800",
		RequiredItems:   []string{"Gloves", "Sturdy shoes", "Reusable water bottle"},
		EstimatedWaste:  floatPtr(75),
		CreatedAt:       time.Date(2024, 11, 22, 14, 0, 0, 0, time.UTC),
	},
	{
		ID:              "3",
		Title:           "Half Moon Bay Community Cleanup",
		Description:     "Our monthly community cleanup at Half Moon Bay. Join local families and environmental advocates for a morning of beach restoration and community building.",
		Date:            "2024-11-25",
		Time:            "10:00",
		Location:        "Half Moon Bay State Beach",
		Coordinates:     &entity.Coordinates{Lat: 37.4636, Lng: -122.4286},
		Organizer:       seedUsers[0],
		Participants:    []entity.User{seedUsers[1], seedUsers[2]},
		MaxParticipants: 40,
		Status:          entity.EventStatusCompleted,
		ImageURL:        "https://images.pexels.com/photos/1001682/pexels-photo-1001682.jpeg?auto=compress&cs=tinysrgb&w=800",
		RequiredItems:   []string{"Gloves", "Reusable water bottle", "Comfortable walking shoes"},
		EstimatedWaste:  floatPtr(60),
		ActualWaste:     floatPtr(78.5),
		CreatedAt:       time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC),
	},
}

var ecoTips = []entity.EcoTip{
	{
		ID:         "1",
		Title:      "Use Reusable Water Bottles",
		Content:    "Replace single-use plastic bottles with reusable ones. A single reusable bottle can eliminate the need for hundreds of plastic bottles per year, significantly reducing ocean plastic pollution.",
		Category:   "waste-reduction",
		Difficulty: "easy",
		Impact:     "high",
		Icon:       "Droplets",
	},
	{
		ID:         "2",
		Title:      "Choose Reef-Safe Sunscreen",
		Content:    "Use mineral-based sunscreens with zinc oxide or titanium dioxide. Chemical sunscreens containing oxybenzone and octinoxate can harm coral reefs and marine life.",
		Category:   "ocean-protection",
		Difficulty: "easy",
		Impact:     "medium",
		Icon:       "Sun",
	},
	{
		ID:         "3",
		Title:      "Reduce Microplastic Pollution",
		Content:    "Wash synthetic clothing less frequently and use a microfiber-catching laundry bag. Synthetic fabrics release microplastics that end up in our oceans.",
		Category:   "waste-reduction",
		Difficulty: "medium",
		Impact:     "high",
		Icon:       "Shirt",
	},
	{
		ID:         "4",
		Title:      "Support Sustainable Seafood",
		Content:    "Choose seafood that's caught or farmed sustainably. Look for certifications like MSC (Marine Stewardship Council) to help protect fish populations and marine ecosystems.",
		Category:   "ocean-protection",
		Difficulty: "medium",
		Impact:     "high",
		Icon:       "Fish",
	},
	{
		ID:         "5",
		Title:      "Use LED Light Bulbs",
		Content:    "Replace incandescent bulbs with LED bulbs. They use 75% less energy and last 25 times longer, reducing both energy consumption and waste.",
		Category:   "energy-saving",
		Difficulty: "easy",
		Impact:     "medium",
		Icon:       "Lightbulb",
	},
	{
		ID:         "6",
		Title:      "Compost Organic Waste",
		Content:    "Start composting food scraps and yard waste. Composting reduces methane emissions from landfills and creates nutrient-rich soil for plants.",
		Category:   "waste-reduction",
		Difficulty: "medium",
		Impact:     "medium",
		Icon:       "Leaf",
	},
	{
		ID:         "7",
		Title:      "Use Public Transportation",
		Content:    "Choose public transport, cycling, or walking over driving when possible. Transportation accounts for about 14% of global greenhouse gas emissions.",
		Category:   "sustainable-living",
		Difficulty: "medium",
		Impact:     "high",
		Icon:       "Bus",
	},
	{
		ID:         "8",
		Title:      "Proper Battery Recycling",
		Content:    "Never throw batteries in regular trash. Take them to designated recycling centers to prevent toxic chemicals from leaching into soil and water.",
		Category:   "recycling",
		Difficulty: "easy",
		Impact:     "medium",
		Icon:       "Battery",
	},
	{
		ID:         "9",
		Title:      "Reduce Phantom Energy Load",
		Content:    "Unplug electronics when not in use or use smart power strips. Many devices consume energy even when turned off, accounting for 5-10% of home energy use.",
		Category:   "energy-saving",
		Difficulty: "easy",
		Impact:     "medium",
		Icon:       "Zap",
	},
	{
		ID:         "10",
		Title:      "Choose Bamboo Products",
		Content:    "Replace plastic items with bamboo alternatives. Bamboo grows rapidly, requires no pesticides, and is biodegradable, making it an excellent eco-friendly material.",
		Category:   "sustainable-living",
		Difficulty: "easy",
		Impact:     "medium",
		Icon:       "TreePine",
	},
}

var faqs = []entity.FAQ{
	{
		ID:       "1",
		Question: "How long does plastic take to decompose in the ocean?",
		Answer:   "Plastic can take 450-1000 years to decompose in the ocean. Some plastics may never fully decompose, instead breaking down into microplastics that persist in the marine environment indefinitely.",
		Category: "Ocean Protection",
	},
	{
		ID:       "2",
		Question: "What is the Great Pacific Garbage Patch?",
		Answer:   "The Great Pacific Garbage Patch is a collection of marine debris concentrated by ocean currents in the North Pacific Ocean. It's estimated to be twice the size of Texas and contains at least 80,000 metric tons of plastic.",
		Category: "Ocean Protection",
	},
	{
		ID:       "3",
		Question: "How can I reduce my carbon footprint at home?",
		Answer:   "You can reduce your carbon footprint by using energy-efficient appliances, improving home insulation, using renewable energy sources, reducing water consumption, and choosing sustainable transportation options.",
		Category: "Sustainable Living",
	},
	{
		ID:       "4",
		Question: "What items can and cannot be recycled?",
		Answer:   "Generally recyclable: paper, cardboard, glass bottles, aluminum cans, plastic bottles (#1-2). Not recyclable: plastic bags, styrofoam, broken glass, electronics, and contaminated materials. Check local guidelines as they vary.",
		Category: "Recycling",
	},
	{
		ID:       "5",
		Question: "How does beach pollution affect marine life?",
		Answer:   "Beach pollution harms marine life through ingestion of plastic debris, entanglement in fishing nets and plastic rings, habitat destruction, and chemical contamination that affects reproduction and health.",
		Category: "Ocean Protection",
	},
	{
		ID:       "6",
		Question: "What are microplastics and why are they dangerous?",
		Answer:   "Microplastics are plastic particles smaller than 5mm. They're dangerous because they can be ingested by marine life, enter the food chain, and potentially affect human health. They also absorb toxic chemicals from the environment.",
		Category: "Waste Reduction",
	},
	{
		ID:       "7",
		Question: "How can I make my daily routine more eco-friendly?",
		Answer:   "Use reusable bags and water bottles, choose public transport or cycling, buy local and seasonal produce, reduce meat consumption, use eco-friendly cleaning products, and minimize single-use items.",
		Category: "Sustainable Living",
	},
	{
		ID:       "8",
		Question: "What is the impact of fast fashion on the environment?",
		Answer:   "Fast fashion contributes to water pollution, excessive waste, high carbon emissions, and poor working conditions. The industry is responsible for 10% of global carbon emissions and 20% of global wastewater.",
		Category: "Sustainable Living",
	},
}

var quizQuestions = []entity.QuizQuestion{
	{
		ID:            "1",
		Question:      "How many plastic bottles are sold worldwide every minute?",
		Options:       []string{"500,000", "1 million", "2 million", "5 million"},
		CorrectAnswer: 1,
		Explanation:   "Approximately 1 million plastic bottles are sold every minute globally, highlighting the massive scale of plastic consumption.",
		Category:      "Waste Reduction",
		Points:        10,
	},
	{
		ID:            "2",
		Question:      "What percentage of the ocean has been explored by humans?",
		Options:       []string{"5%", "20%", "50%", "80%"},
		CorrectAnswer: 0,
		Explanation:   "Less than 5% of the ocean has been explored, making it one of the least understood environments on Earth.",
		Category:      "Ocean Protection",
		Points:        10,
	},
	{
		ID:            "3",
		Question:      "Which material takes the longest to decompose in a landfill?",
		Options:       []string{"Aluminum can", "Plastic bottle", "Glass bottle", "Paper"},
		CorrectAnswer: 2,
		Explanation:   "Glass bottles can take up to 1 million years to decompose, making them the longest-lasting waste in landfills.",
		Category:      "Recycling",
		Points:        15,
	},
	{
		ID:            "4",
		Question:      "What is the most effective way to reduce your carbon footprint?",
		Options:       []string{"Recycling more", "Using LED bulbs", "Reducing meat consumption", "Taking shorter showers"},
		CorrectAnswer: 2,
		Explanation:   "Reducing meat consumption, especially beef, can significantly reduce your carbon footprint as livestock farming produces substantial greenhouse gases.",
		Category:      "Sustainable Living",
		Points:        15,
	},
	{
		ID:            "5",
		Question:      "How much of the world's oxygen is produced by the ocean?",
		Options:       []string{"20%", "50%", "70%", "90%"},
		CorrectAnswer: 2,
		Explanation:   "The ocean produces approximately 70% of the world's oxygen, primarily through phytoplankton photosynthesis.",
		Category:      "Ocean Protection",
		Points:        20,
	},
	{
		ID:            "6",
		Question:      "What is the average lifespan of a reusable water bottle?",
		Options:       []string{"1 year", "3 years", "5 years", "10+ years"},
		CorrectAnswer: 3,
		Explanation:   "A quality reusable water bottle can last 10+ years with proper care, replacing thousands of single-use bottles.",
		Category:      "Waste Reduction",
		Points:        10,
	},
	{
		ID:            "7",
		Question:      "Which renewable energy source is the fastest growing globally?",
		Options:       []string{"Wind", "Solar", "Hydroelectric", "Geothermal"},
		CorrectAnswer: 1,
		Explanation:   "Solar energy is the fastest-growing renewable energy source, with costs decreasing rapidly and efficiency improving.",
		Category:      "Energy Saving",
		Points:        15,
	},
	{
		ID:            "8",
		Question:      "What percentage of plastic waste is actually recycled globally?",
		Options:       []string{"9%", "25%", "50%", "75%"},
		CorrectAnswer: 0,
		Explanation:   "Only about 9% of plastic waste is actually recycled globally, with most ending up in landfills or the environment.",
		Category:      "Recycling",
		Points:        20,
	},
}

var certificates = []entity.Certificate{
	{
		ID:               "1",
		EventID:          "1",
		EventTitle:       "Golden Gate Beach Cleanup",
		ParticipantID:    "2",
		ParticipantName:  "Alex Chen",
		OrganizerID:      "1",
		OrganizerName:    "Ocean Guardians NGO",
		DateIssued:       "2024-11-25",
		WasteCollected:   floatPtr(15.5),
		CertificateType:  entity.CertificateParticipation,
		VerificationCode: "CW-2024-GG-001",
	},
	{
		ID:               "2",
		EventID:          "3",
		EventTitle:       "Half Moon Bay Community Cleanup",
		ParticipantID:    "2",
		ParticipantName:  "Alex Chen",
		OrganizerID:      "1",
		OrganizerName:    "Ocean Guardians NGO",
		DateIssued:       "2024-11-25",
		WasteCollected:   floatPtr(22.3),
		CertificateType:  entity.CertificateAchievement,
		VerificationCode: "CW-2024-HMB-002",
	},
	{
		ID:               "3",
		EventID:          "2",
		EventTitle:       "Monterey Bay Restoration",
		ParticipantID:    "2",
		ParticipantName:  "Alex Chen",
		OrganizerID:      "1",
		OrganizerName:    "Ocean Guardians NGO",
		DateIssued:       "2024-12-01",
		WasteCollected:   floatPtr(18.7),
		CertificateType:  entity.CertificateLeadership,
		VerificationCode: "CW-2024-MB-003",
	},
}

// Users returns a fresh copy of the immutable seed user list.
func Users() []entity.User {
	out := make([]entity.User, len(seedUsers))
	for i, u := range seedUsers {
		out[i] = u.Clone()
	}
	return out
}

// Events returns a fresh copy of the built-in event list used for the
// first-run bootstrap.
func Events() []entity.Event {
	out := make([]entity.Event, len(seedEvents))
	for i, ev := range seedEvents {
		out[i] = ev.Clone()
	}
	return out
}

// Tips returns the ordered eco tip list.
func Tips() []entity.EcoTip {
	out := make([]entity.EcoTip, len(ecoTips))
	copy(out, ecoTips)
	return out
}

// FAQs returns the FAQ list.
func FAQs() []entity.FAQ {
	out := make([]entity.FAQ, len(faqs))
	copy(out, faqs)
	return out
}

// QuizQuestions returns the ordered quiz question list.
func QuizQuestions() []entity.QuizQuestion {
	out := make([]entity.QuizQuestion, len(quizQuestions))
	copy(out, quizQuestions)
	return out
}

// Certificates returns the mock certificate set served to the presentation
// layer.
func Certificates() []entity.Certificate {
	out := make([]entity.Certificate, len(certificates))
	copy(out, certificates)
	return out
}
