package catalog

import "github.com/fjod/storefront/internal/domain"

var defaultProducts = []domain.Product{
	{
		ID:          1,
		Name:        "Boat Airdopes 131",
		Price:       1299,
		ImageURL:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSuthSUJwn_g9fAnqnT3G7gU50Lb0e4HlCUsg&s",
		Description: "Wireless earbuds with 13mm drivers, 15-hour battery life, and IPX4 water resistance",
		Category:    "Electronics",
	},
	{
		ID:          2,
		Name:        "Noise ColorFit Pro 4",
		Price:       2999,
		ImageURL:    "https://encrypted-tbn2.gstatic.com/shopping?q=tbn:ANd9GcTmaLD99DhgA-s_465gbz6qg5Ztut-y6_bTVg8zHWuSevY_3YIAXwFbGRXjN0lhEpbEoRVvYMkqqn-drvVkkmYizaM5eBBdW8cBxti-D6kGixG--NOsrLN4sw",
		Description: "Smart fitness band with SpO2 monitoring, heart rate tracking, and 7-day battery life",
		Category:    "Electronics",
	},
	{
		ID:          3,
		Name:        "Tata Coffee Gold",
		Price:       299,
		ImageURL:    "https://m.media-amazon.com/images/I/61cMHd80RLL.jpg",
		Description: "Premium coffee blend from the hills of Karnataka, rich and aromatic",
		Category:    "Food & Beverage",
	},
	{
		ID:          4,
		Name:        "Fabindia Cotton Kurta",
		Price:       1299,
		ImageURL:    "https://encrypted-tbn0.gstatic.com/shopping?q=tbn:ANd9GcSBMCIjhmEgZo2atgTlDq8PKNcnfU84Bmaj4i0SuOWIDn8lDoQXhd-VtesZnLS6g9z9-Kikm33dqVR7McewuWbk5Sx3ViGwuAzsg9_zdQujWAJuDA4AuNpOJw",
		Description: "Handwoven cotton kurta in traditional Indian design, comfortable and elegant",
		Category:    "Clothing",
	},
	{
		ID:          5,
		Name:        "OnePlus Wireless Charger",
		Price:       1999,
		ImageURL:    "https://encrypted-tbn2.gstatic.com/shopping?q=tbn:ANd9GcSQTkMQGOCremUHZysBkriJcxajunQnqf7s2z23PZqrEnry2lo4Le_fehLKbKcq3b9n5bYIejHdF--SG9Z-6Qr-t6wuzQxbqfTkhyDy4XgtOFNkqihe8lZx",
		Description: "Fast wireless charging pad with 30W power delivery and LED indicator",
		Category:    "Electronics",
	},
	{
		ID:          6,
		Name:        "Himalayan Salt Lamp",
		Price:       899,
		ImageURL:    "https://m.media-amazon.com/images/I/61mC9O9C6+L.jpg",
		Description: "Natural Himalayan salt lamp for ambient lighting and air purification",
		Category:    "Home & Office",
	},
	{
		ID:          7,
		Name:        "Yoga Mat by Decathlon",
		Price:       599,
		ImageURL:    "https://encrypted-tbn0.gstatic.com/shopping?q=tbn:ANd9GcRcbnP_FearZGkgDLdl5AWojAWl2TBgNESW2IuOVPVsmoS70uA8sXGTP2-lQmumL4_03oNagfoD8RNyc7JG8r8OyvQrHm0-RkQ05P2ONCi8e7KyLBKoJAV7_rc",
		Description: "Non-slip yoga mat perfect for Indian yoga practices, lightweight and portable",
		Category:    "Sports & Fitness",
	},
	{
		ID:          8,
		Name:        "Terracotta Tea Set",
		Price:       799,
		ImageURL:    "https://www.terracottabysachii.com/cdn/shop/files/Sustainable_Kolkata_Terracotta_Pottery_Teaset_for_4_1.jpg?v=1723954984",
		Description: "Handcrafted terracotta tea set from Rajasthan, traditional Indian design",
		Category:    "Home & Office",
	},
	{
		ID:          9,
		Name:        "Kashmiri Saffron",
		Price:       2499,
		ImageURL:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQXlbjgmDNcFefdC33eV1I7Q6_OsGCZ5p2waw&s",
		Description: "Premium Kashmiri saffron, the world's most expensive spice, 2g pack",
		Category:    "Food & Beverage",
	},
	{
		ID:          10,
		Name:        "Banarasi Silk Saree",
		Price:       8999,
		ImageURL:    "https://encrypted-tbn2.gstatic.com/shopping?q=tbn:ANd9GcSr88mS4yVf-PFen7Aa_zGsnaw3KJ2i6hrLwNsCzrImgCzdB98GtlJzG5O1xzIWXH4rxGT0P9N2MLG_plFQobqRdhl2YK_Lnz5PNBu38mJehYtZ3ogeXjv0",
		Description: "Authentic Banarasi silk saree with intricate zari work, perfect for special occasions",
		Category:    "Clothing",
	},
}

// Default returns the built-in storefront catalog.
func Default() *Static {
	s, err := New(defaultProducts)
	if err != nil {
		panic(err)
	}
	return s
}
