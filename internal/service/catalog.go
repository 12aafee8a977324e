package service

import "github.com/fsdevblog/groph-checkout/internal/repository/repoargs"

// DefaultCatalog стартовый каталог магазина. Цены в центах COP.
func DefaultCatalog() []repoargs.CreateProduct {
	return []repoargs.CreateProduct{
		{
			Name:        "iPhone 15 Pro",
			Description: "Apple iPhone 15 Pro 256GB - Titanium Natural. A17 Pro chip, 48MP camera system.",
			Price:       499900000,
			Stock:       25,
			ImageURL: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/" +
				"iphone-15-pro-finish-select-202309-6-1inch_GEO_US?wid=800&hei=800",
		},
		{
			Name:        "Samsung Galaxy S24 Ultra",
			Description: "Samsung Galaxy S24 Ultra 512GB - Titanium Gray. Snapdragon 8 Gen 3, S Pen included.",
			Price:       549900000,
			Stock:       18,
			ImageURL: "https://images.samsung.com/is/image/samsung/p6pim/co/2401/gallery/" +
				"co-galaxy-s24-sm-s928bzkcltc-thumb-539573328",
		},
		{
			Name:        `MacBook Pro 14"`,
			Description: `Apple MacBook Pro 14" M3 Pro chip, 18GB RAM, 512GB SSD. Space Black.`,
			Price:       899900000,
			Stock:       12,
			ImageURL: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/" +
				"mbp14-spacegray-select-202310?wid=800&hei=800",
		},
		{
			Name:        "Sony WH-1000XM5",
			Description: "Sony WH-1000XM5 Wireless Noise Canceling Headphones. 30hr battery, multipoint connection.",
			Price:       169900000,
			Stock:       45,
			ImageURL:    "https://www.sony.com/image/5d02da5df552836db894cead8a68f5f3?fmt=png-alpha&wid=800",
		},
		{
			Name:        "Apple Watch Ultra 2",
			Description: "Apple Watch Ultra 2 GPS + Cellular 49mm. Titanium case with Alpine Loop.",
			Price:       379900000,
			Stock:       20,
			ImageURL: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/" +
				"watch-ultra-2-702702-702702?wid=800&hei=800",
		},
		{
			Name:        `iPad Pro 12.9"`,
			Description: `Apple iPad Pro 12.9" M2 chip, 256GB, WiFi. Liquid Retina XDR display.`,
			Price:       549900000,
			Stock:       15,
			ImageURL: "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/" +
				"ipad-pro-13-select-wifi-spacegray-202210?wid=800&hei=800",
		},
		{
			Name:        "DJI Mini 4 Pro",
			Description: "DJI Mini 4 Pro Drone with RC 2 Controller. 4K/60fps HDR video, 48MP photos.",
			Price:       449900000,
			Stock:       8,
			ImageURL:    "https://dji-official-fe.djicdn.com/dps/0bc4bdb7f3d9d4a8d2f1f6fc9e4a5c7e.png",
		},
		{
			Name:        "PlayStation 5",
			Description: "Sony PlayStation 5 Disc Edition. 825GB SSD, DualSense controller included.",
			Price:       269900000,
			Stock:       30,
			ImageURL:    "https://gmedia.playstation.com/is/image/SIEPDC/ps5-product-thumbnail-01-en-14sep21?$800px$",
		},
		{
			Name:        "Nintendo Switch OLED",
			Description: `Nintendo Switch OLED Model - White. 7" OLED screen, 64GB internal storage.`,
			Price:       179900000,
			Stock:       35,
			ImageURL: "https://assets.nintendo.com/image/upload/c_fill,w_800/q_auto:best/f_auto/dpr_2.0/" +
				"ncom/en_US/switch/site-design-update/oled-background",
		},
		{
			Name:        "Bose SoundLink Max",
			Description: "Bose SoundLink Max Portable Speaker. 20hr battery, IP67 waterproof, PositionIQ.",
			Price:       149900000,
			Stock:       22,
			ImageURL: "https://assets.bose.com/content/dam/cloudassets/Bose_DAM/Web/consumer_electronics/global/" +
				"products/speakers/soundlink_max/product_silo_images/aem_pdp_silo_soundlink-max_bk_EC-800x800.png/" +
				"jcr:content/renditions/cq5dam.web.600.600.png",
		},
	}
}
