package book

// seedBooks is the fixed demo catalog inserted when the store is empty.
var seedBooks = []CreateInput{
	{
		Name:        "The Toxin Audit",
		Description: "Dr. Helena Voss provides a comprehensive field guide to identifying, cataloging, and safely recovering toxic chemicals from industrial waste streams.",
		Category:    "Industrial",
	},
	{
		Name:        "Industrial Streams",
		Description: "Marcus Chen explores innovative methods for transforming factory byproducts into valuable resources, featuring case studies from leading facilities.",
		Category:    "Industrial",
	},
	{
		Name:        "From Curb to Commodity",
		Description: "Sarah Kellerman traces the complete lifecycle of municipal waste, from collection to processing, revealing opportunities for value recovery.",
		Category:    "Municipal",
	},
	{
		Name:        "Zero Waste Cities",
		Description: "James Okafor presents actionable strategies for municipalities aiming to achieve zero waste status, with examples from successful programs.",
		Category:    "Municipal",
	},
	{
		Name:        "The Decomposition Advantage",
		Description: "Maria Sandoval demonstrates how organic waste can be transformed into premium compost and biogas, creating environmental and economic value.",
		Category:    "Organic",
	},
	{
		Name:        "Soil Regeneration",
		Description: "Dr. Patrick Greenway explains the science behind using composted organic matter to restore depleted soils and enhance agricultural productivity.",
		Category:    "Organic",
	},
}
