package catalog

// Seed data for the shop and services pages. The catalog is reference data:
// it never changes at runtime and there is no mutation surface.

func seedProducts() []Product {
	return []Product{
		{ID: "w1", Name: "Handcrafted Wooden Jewelry Box", Price: 89, Rating: 4.8, Category: "Wood Art", Group: "wood"},
		{ID: "w2", Name: "Wooden Pendant Necklace", Price: 39, Rating: 4.6, Category: "Wood Jewelry", Group: "wood"},
		{ID: "w3", Name: "Basic Woodworking Course", Price: 149, Rating: 4.9, Category: "Courses", Group: "wood"},
		{ID: "p1", Name: "Handmade Wedding Cards Set", Price: 29, Rating: 4.7, Category: "Cards", Group: "paper"},
		{ID: "p2", Name: "Vintage Style Bookmarks", Price: 12, Rating: 4.5, Category: "Bookmarks", Group: "paper"},
		{ID: "j1", Name: "Beginner Juggling Set", Price: 24, Rating: 4.6, Category: "Sets", Group: "juggling"},
		{ID: "j2", Name: "Party Entertainment Package", Price: 199, Rating: 4.9, Category: "Events", Group: "juggling"},
		{ID: "a1", Name: "Watercolor Landscape", Price: 299, Rating: 4.8, Category: "Paintings", Group: "art"},
		{ID: "a2", Name: "Mixed Media Workshop", Price: 89, Rating: 4.7, Category: "Lessons", Group: "art"},
		{ID: "s1", Name: "Web Development Consultation", Price: 149, Rating: 5.0, Category: "Consulting", Group: "software"},
		{ID: "s2", Name: "Programming Basics Course", Price: 299, Rating: 4.8, Category: "Teaching", Group: "software"},
	}
}

func seedServices() []Service {
	return []Service{
		{
			ID:          "wood",
			Title:       "Wood Crafts",
			Description: "From delicate jewelry to custom furniture, we create unique wooden pieces with love and skill.",
			Price:       "Starting at $39",
			Offerings: []Offering{
				{ID: "wood-art", ServiceID: "wood", Title: "Custom wood art and decor", Description: "Unique wooden art pieces and decorative items crafted to your specifications.", Duration: "2-4 weeks", Price: "Starting at $199"},
				{ID: "wood-jewelry", ServiceID: "wood", Title: "Handcrafted wood jewelry", Description: "Beautiful wooden jewelry pieces including necklaces, bracelets, and earrings.", Duration: "1-2 weeks", Price: "Starting at $39"},
				{ID: "wood-course", ServiceID: "wood", Title: "Weekend woodworking courses", Description: "Learn the basics of woodworking in our weekend courses.", Duration: "2 days", Price: "$299 per person"},
			},
		},
		{
			ID:          "paper",
			Title:       "Paper Crafts",
			Description: "Discover our handmade paper creations, perfect for special occasions or as unique gifts. Custom orders welcome for personalized designs.",
			Price:       "Starting at $12",
			Offerings: []Offering{
				{ID: "paper-cards", ServiceID: "paper", Title: "Handmade cards and invitations", Description: "Custom designed cards and invitations for weddings, birthdays, and special events.", Duration: "1-2 weeks", Price: "Starting at $12"},
				{ID: "paper-albums", ServiceID: "paper", Title: "Custom memory albums", Description: "Beautifully crafted photo albums and scrapbooks, perfect for preserving your precious memories.", Duration: "2-3 weeks", Price: "Starting at $89"},
				{ID: "paper-boxes", ServiceID: "paper", Title: "Decorative boxes and packaging", Description: "Unique gift boxes and packaging solutions for special occasions.", Duration: "1-2 weeks", Price: "Starting at $29"},
				{ID: "paper-bookmarks", ServiceID: "paper", Title: "Artisanal bookmarks", Description: "Hand-crafted bookmarks using various paper crafting techniques.", Duration: "3-5 days", Price: "Starting at $15"},
			},
		},
		{
			ID:          "juggling",
			Title:       "Juggling",
			Description: "Learn the art of juggling or book us for your next event. We offer beginner-friendly equipment and professional entertainment services.",
			Price:       "Starting at $24",
			Offerings: []Offering{
				{ID: "juggling-sets", ServiceID: "juggling", Title: "Beginner juggling sets", Description: "High-quality juggling equipment sets for beginners, including balls, clubs, and rings.", Duration: "Immediate", Price: "Starting at $24"},
				{ID: "juggling-lessons", ServiceID: "juggling", Title: "Private and group lessons", Description: "Learn juggling from experienced performers. Available for all skill levels.", Duration: "1 hour", Price: "$49 per session"},
				{ID: "juggling-events", ServiceID: "juggling", Title: "Event entertainment packages", Description: "Professional juggling performances for corporate events, parties, and festivals.", Duration: "1-2 hours", Price: "Starting at $299"},
				{ID: "juggling-parties", ServiceID: "juggling", Title: "Children's party performances", Description: "Interactive juggling shows and workshops perfect for children's parties.", Duration: "45-60 minutes", Price: "$199 per party"},
			},
		},
		{
			ID:          "art",
			Title:       "Art & Painting",
			Description: "Express yourself through various art forms. We offer original paintings and workshops in different techniques.",
			Price:       "Starting at $89",
			Offerings: []Offering{
				{ID: "art-paintings", ServiceID: "art", Title: "Original paintings", Description: "Commission unique paintings in various styles and mediums.", Duration: "2-4 weeks", Price: "Starting at $299"},
				{ID: "art-mixed", ServiceID: "art", Title: "Mixed media artwork", Description: "Unique pieces combining different artistic mediums and techniques.", Duration: "3-5 weeks", Price: "Starting at $199"},
				{ID: "art-workshops", ServiceID: "art", Title: "Art technique workshops", Description: "Learn various painting techniques in our hands-on workshops. All materials included.", Duration: "3 hours", Price: "$89 per session"},
				{ID: "art-commission", ServiceID: "art", Title: "Custom commissions", Description: "Commission custom artwork tailored to your vision and space. Consultation included.", Duration: "3-6 weeks", Price: "Starting at $499"},
			},
		},
		{
			ID:          "software",
			Title:       "Software & Teaching",
			Description: "Get personalized guidance in software development or join our coding workshops. We specialize in making technology accessible.",
			Price:       "Starting at $149",
			Offerings: []Offering{
				{ID: "software-basics", ServiceID: "software", Title: "Programming basics courses", Description: "Introduction to programming fundamentals. Perfect for beginners.", Duration: "6 weeks", Price: "$499 per course"},
				{ID: "software-web", ServiceID: "software", Title: "Web development consulting", Description: "Expert consultation for your web development projects.", Duration: "Flexible", Price: "$149 per hour"},
				{ID: "software-custom", ServiceID: "software", Title: "Custom software solutions", Description: "Tailored software development for your specific needs.", Duration: "Project-based", Price: "Starting at $999"},
				{ID: "software-mentoring", ServiceID: "software", Title: "One-on-one mentoring", Description: "Personalized mentoring sessions to help you achieve your programming goals.", Duration: "1 hour", Price: "$99 per session"},
			},
		},
	}
}
