package analytics

// FallbackRecords is the fixed sample shown when the record source is
// unavailable. A fresh slice is returned on every call.
func FallbackRecords() []FarmerRecord {
	return []FarmerRecord{
		{
			ID:            1,
			Name:          "Budi Santoso",
			Position:      Position{-6.2088, 106.8456},
			CommodityType: "padi",
			CommodityName: "Padi Ciherang",
			Location:      "Jakarta Selatan, DKI Jakarta",
			District:      "Jakarta Selatan",
			Province:      "DKI Jakarta",
			Status:        "Siap Panen",
			Contact:       "08123456789",
			Category:      "Organik",
			Organic:       true,
			EstYieldTon:   12.5,
			LandArea:      2.5,
			HarvestDate:   "2025-01-15",
			Image:         "https://images.unsplash.com/photo-1536657464919-892534f60d6e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		},
		{
			ID:            2,
			Name:          "Ani Wijaya",
			Position:      Position{-6.9932, 110.4203},
			CommodityType: "jagung",
			CommodityName: "Jagung Manis",
			Location:      "Semarang, Jawa Tengah",
			District:      "Semarang",
			Province:      "Jawa Tengah",
			Status:        "Masa Tanam",
			Contact:       "08234567890",
			Category:      "Non-Organik",
			EstYieldTon:   8,
			LandArea:      1.8,
			HarvestDate:   "2025-03-20",
			Image:         "https://images.unsplash.com/photo-1551754655-cd27e38d2076?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		},
		{
			ID:            3,
			Name:          "Dedi Kurniawan",
			Position:      Position{-7.7971, 110.3688},
			CommodityType: "sayur",
			CommodityName: "Bayam Hijau",
			Location:      "Sleman, DI Yogyakarta",
			District:      "Sleman",
			Province:      "DI Yogyakarta",
			Status:        "Siap Panen",
			Contact:       "08345678901",
			Category:      "Organik",
			Organic:       true,
			EstYieldTon:   3.2,
			LandArea:      0.6,
			HarvestDate:   "2025-02-05",
			Image:         "https://images.unsplash.com/photo-1574316071802-0d684efa7bf5?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		},
		{
			ID:            4,
			Name:          "Siti Rahayu",
			Position:      Position{-6.9147, 107.6098},
			CommodityType: "buah",
			CommodityName: "Mangga Harum Manis",
			Location:      "Bandung, Jawa Barat",
			District:      "Bandung",
			Province:      "Jawa Barat",
			Status:        "Perawatan",
			Contact:       "08456789012",
			Category:      "Non-Organik",
			EstYieldTon:   6.4,
			LandArea:      1.2,
			HarvestDate:   "2025-04-10",
			Image:         "https://images.unsplash.com/photo-1553279768-865429fa0078?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		},
		{
			ID:            5,
			Name:          "Joko Widodo",
			Position:      Position{-7.2575, 112.7521},
			CommodityType: "padi",
			CommodityName: "Padi IR64",
			Location:      "Surabaya, Jawa Timur",
			District:      "Surabaya",
			Province:      "Jawa Timur",
			Status:        "Siap Panen",
			Contact:       "08567890123",
			Category:      "Organik",
			Organic:       true,
			EstYieldTon:   15,
			LandArea:      3,
			HarvestDate:   "2025-01-28",
			Image:         "https://images.unsplash.com/photo-1536657464919-892534f60d6e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		},
	}
}
