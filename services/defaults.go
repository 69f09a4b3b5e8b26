package services

import "monipee-hotel/models"

const (
	defaultAdminID       = "admin-001"
	defaultAdminEmail    = "admin@monipee.com"
	defaultAdminName     = "Admin"
	defaultAdminPassword = "admin123"
)

func defaultSettings() models.HotelSettings {
	return models.HotelSettings{
		HotelName:       "Monipee Hotel",
		Email:           "info@monipeehotel.com",
		Phone:           "032 249 5451",
		Address:         "Ahansowodee, Ghana (Behind Monipee Gold)",
		CheckInTime:     "14:00",
		CheckOutTime:    "12:00",
		Currency:        "GH₵",
		TaxRate:         15,
		EnableBookings:  true,
		EnableReviews:   true,
		MaintenanceMode: false,
	}
}

func roomImage(file string) []models.RoomImage {
	return []models.RoomImage{{Name: file, Size: 0, Type: "image/jpeg", DataURL: "/" + file}}
}

func defaultRooms() []models.Room {
	return []models.Room{
		{
			ID:          "standard",
			Name:        "Standard Room",
			Type:        "standard",
			Price:       350,
			Capacity:    2,
			Amenities:   []string{"Free WiFi", "Air Conditioning", "TV", "Private Bathroom"},
			Description: "Comfortable room with all essential amenities for a pleasant stay.",
			Image:       "/11.jpeg",
			Available:   true,
			Size:        "25m²",
			Images:      roomImage("11.jpeg"),
		},
		{
			ID:          "deluxe",
			Name:        "Deluxe Room",
			Type:        "deluxe",
			Price:       550,
			Capacity:    3,
			Amenities:   []string{"Free WiFi", "Air Conditioning", "Smart TV", "Mini Bar", "Balcony", "Room Service"},
			Description: "Spacious room with premium amenities and city views.",
			Image:       "/14.jpeg",
			Available:   true,
			Size:        "35m²",
			Images:      roomImage("14.jpeg"),
		},
		{
			ID:          "suite",
			Name:        "Executive Suite",
			Type:        "suite",
			Price:       850,
			Capacity:    4,
			Amenities:   []string{"Free WiFi", "Air Conditioning", "Smart TV", "Mini Bar", "Jacuzzi", "Living Area", "Butler Service"},
			Description: "Luxurious suite with separate living area and premium facilities.",
			Image:       "/16.jpeg",
			Available:   true,
			Size:        "55m²",
			Images:      roomImage("16.jpeg"),
		},
	}
}

func defaultGallery() []models.GalleryImage {
	return []models.GalleryImage{
		{ID: "img-1", Category: "Rooms", Src: "/11.jpeg", Alt: "Hotel Room"},
		{ID: "img-2", Category: "Rooms", Src: "/12.jpeg", Alt: "Comfortable Bed"},
		{ID: "img-3", Category: "Rooms", Src: "/13.jpeg", Alt: "Room Interior"},
		{ID: "img-4", Category: "Rooms", Src: "/14.jpeg", Alt: "Spacious Suite"},
		{ID: "img-5", Category: "Rooms", Src: "/15.jpeg", Alt: "Standard Room"},
		{ID: "img-6", Category: "Rooms", Src: "/16.jpeg", Alt: "Deluxe Room"},
		{ID: "img-7", Category: "Exterior", Src: "/17.jpeg", Alt: "Hotel Exterior Night View"},
		{ID: "img-8", Category: "Exterior", Src: "/18.jpeg", Alt: "Hotel Building"},
		{ID: "img-9", Category: "Exterior", Src: "/19.jpeg", Alt: "Entrance"},
		{ID: "img-10", Category: "Exterior", Src: "/20.jpeg", Alt: "Hotel Grounds"},
		{ID: "img-11", Category: "Exterior", Src: "/21.jpeg", Alt: "Outdoor View"},
		{ID: "img-12", Category: "Amenities", Src: "/22.jpeg", Alt: "Hotel Amenities"},
		{ID: "img-13", Category: "Amenities", Src: "/23.jpeg", Alt: "Facility View"},
		{ID: "img-14", Category: "Dining", Src: "/24.jpeg", Alt: "Restaurant Area"},
		{ID: "img-15", Category: "Dining", Src: "/25.jpeg", Alt: "Dining Hall"},
		{ID: "img-16", Category: "Dining", Src: "/26.jpeg", Alt: "Buffet Setup"},
		{ID: "img-17", Category: "Exterior", Src: "/Kegali-Hotel.jpg", Alt: "Kegali View"},
	}
}

func defaultReviews() []models.Review {
	published := func(id, name, date string, rating int, comment string) models.Review {
		return models.Review{ID: id, Name: name, Date: date, Rating: rating, Comment: comment, Status: models.ReviewPublished}
	}
	return []models.Review{
		published("review-matilda-tsagli", "Matilda Tsagli", "December 2024", 4,
			"The roads leading to Monipee has deteriorated. It’s dusty and have potholes. If it’s fixed, Monipee will be a hit. Some of the locks on the door need replaced and the door leading to our room also needs maintained."),
		published("review-richard-bellson", "Richard Bellson", "2 years ago", 5,
			"Monipee Hotel stands out as one of the best accommodations in Obuasi. The serene environment creates a pleasant atmosphere for guests, while the security measures provide peace of mind."),
		published("review-gideon-ofori", "Gideon Ofori", "2 years ago", 4,
			"Great place... a little far out from the Obuasi township. Good thing is there's a police post at their entrance at night. So good security."),
		published("review-abena-kesewaa", "Abena Kesewaa", "7 years ago", 5,
			"Serene environment, clean rooms, and well kept washrooms. Highly professional staff. My all time favorite hotel in Obuasi right now."),
		published("review-emmanuel-nyarko", "Emmanuel Nyarko", "2 years ago", 4,
			"Good environment to enjoy your holidays and they've a nice swimming pool to also enjoy yourself."),
		published("review-charles-akyeampong", "Charles Akyeampong", "a year ago", 1,
			"Outwards looks good with flowers and beautiful plants garden. Reception staff ok, the area is not serene. The rooms are not well kept. Water dampness is an issue on the walls and makes the rooms stuffy. Washroom maintenance and tidiness is an issue."),
		published("review-alycea-shirley", "Alycea Shirley", "3 years ago", 1,
			"This had to be my worst experience at a hotel in Ghana. The place is very beautiful when you enter, but looks are definitely deceiving. There is a serious water issue; the water comes out yellow a lot of the time."),
		published("review-see-the-world", "See the World", "5 years ago", 3,
			"Sad to give this hotel 3 stars but I have to. The landscape is immaculate; receptionist, caterers, and cleaners are amazing; food is awesome. But there are maintenance issues."),
		published("review-sylvester-mawuli-abudu", "Sylvester Mawuli Abudu", "6 years ago", 5,
			"Monipee is a great place and a very beautiful environment. I love to hang out there. Good reception and great service."),
	}
}

func defaultHeroSections() []models.HeroSection {
	return []models.HeroSection{
		{ID: "home", Label: "★★★ 3-Star Luxury Hotel", Title: "Welcome to\nMonipee Hotel",
			Subtitle: "Experience Ghanaian hospitality at its finest. Your comfort is our priority."},
		{ID: "about", Label: "Our Story", Title: "About Monipee Hotel",
			Subtitle: "Discover the story behind Ghana's premier hospitality destination"},
		{ID: "rooms", Label: "Accommodations", Title: "Rooms & Suites",
			Subtitle: "Find your perfect room for an unforgettable stay"},
		{ID: "amenities", Label: "Facilities", Title: "Hotel Amenities",
			Subtitle: "Everything you need for a comfortable and memorable stay"},
		{ID: "gallery", Label: "Visual Tour", Title: "Photo Gallery",
			Subtitle: "Take a visual journey through Monipee Hotel"},
		{ID: "reviews", Label: "Testimonials", Title: "Guest Reviews",
			Subtitle: "See what our guests have to say about their experience"},
		{ID: "location", Label: "Find Us", Title: "Location & Directions",
			Subtitle: "Conveniently located in the heart of Ahansowodee, Ghana"},
		{ID: "contact", Label: "Get in Touch", Title: "Contact Us",
			Subtitle: "We're here to help with any questions or reservations"},
		{ID: "booking", Label: "Reservations", Title: "Book Your Stay",
			Subtitle: "Complete your reservation in just a few steps and experience luxury."},
		{ID: "faq", Label: "Help Center", Title: "Frequently Asked Questions",
			Subtitle: "Find answers to common questions about your stay at Monipee Hotel."},
	}
}

func defaultPageContents() []models.PageContent {
	return []models.PageContent{
		{
			ID:     "home",
			Images: map[string]string{"aboutPreview": ""},
			Content: map[string]string{
				"heroRating":                        "4.0",
				"heroReviewCount":                   "212",
				"heroStartingPrice":                 "331",
				"aboutPreviewSubtitle":              "Welcome",
				"aboutPreviewTitle":                 "A Haven of Comfort in Ghana",
				"aboutPreviewDescription":           "Nestled in the heart of Ahansowodee, Monipee Hotel offers a perfect blend of traditional Ghanaian hospitality and modern luxury.",
				"aboutPreviewBody":                  "Whether you're traveling for business or leisure, our dedicated team ensures every moment of your stay is memorable. From our elegantly appointed rooms to our world-class amenities, experience hospitality that exceeds expectations.",
				"amenitiesPreviewSubtitle":          "Amenities",
				"amenitiesPreviewTitle":             "Exceptional Facilities",
				"amenitiesPreviewDescription":       "Enjoy our comprehensive range of amenities designed for your comfort and convenience.",
				"amenitiesCardWifiTitle":            "Free Wi-Fi",
				"amenitiesCardWifiDescription":      "High-speed internet throughout the hotel",
				"amenitiesCardBreakfastTitle":       "Free Breakfast",
				"amenitiesCardBreakfastDescription": "Complimentary daily breakfast buffet",
				"amenitiesCardParkingTitle":         "Free Parking",
				"amenitiesCardParkingDescription":   "Secure on-site parking for all guests",
				"amenitiesCardPoolTitle":            "Swimming Pool",
				"amenitiesCardPoolDescription":      "Outdoor pool with poolside service",
				"galleryPreviewSubtitle":            "Gallery",
				"galleryPreviewTitle":               "A Glimpse of Monipee",
				"galleryPreviewDescription":         "Explore highlights from our rooms, amenities, dining, and exterior.",
			},
		},
		{
			ID:     "about",
			Images: map[string]string{"hero": "", "pool": "", "restaurant": ""},
			Content: map[string]string{
				"storySubtitle": "Our History",
				"storyTitle":    "A Legacy of Excellence",
				"storyP1":       "Founded with a vision to bring world-class hospitality to Ghana, Monipee Hotel has been welcoming guests from around the world for over 15 years. What started as a modest guesthouse has grown into one of the region's most beloved 3-star hotels.",
				"storyP2":       "Our name, \"Monipee,\" reflects our commitment to excellence and our deep roots in the Ghanaian community. Every aspect of our hotel, from the architecture to the cuisine, celebrates the rich culture and warm hospitality that Ghana is known for.",
				"storyP3":       "Today, we continue to uphold the values that have made us successful: exceptional service, attention to detail, and a genuine care for every guest who walks through our doors.",
			},
		},
		{
			ID:     "amenities",
			Images: map[string]string{"hero": "", "pool": "", "restaurant": ""},
			Content: map[string]string{
				"featuredSubtitle":    "Featured Amenities",
				"featuredTitle":       "Exceptional Facilities",
				"featuredDescription": "We offer a comprehensive range of amenities designed for your comfort and convenience.",
			},
		},
		{
			ID:      "gallery",
			Images:  map[string]string{"hero": ""},
			Content: map[string]string{},
		},
	}
}
