package models

type VideoTutorial struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	YouTubeID   string `json:"youtube_id"`
}

// VideoTutorials is the fixed catalogue served by /video_tutorials.
var VideoTutorials = []VideoTutorial{
	{
		Title:       "Sri Method of Rice Cultivation | Eco Friendly Agriculture",
		Description: "Learn the basics of the Sri Method of Rice Cultivation for eco-friendly and sustainable agriculture.",
		YouTubeID:   "dv9iY52cTCM",
	},
	{
		Title:       "How to Start a Farm From Scratch (Beginner's Guide)",
		Description: "A comprehensive beginner's guide to starting a farm from scratch.",
		YouTubeID:   "fRlUhUWS0Hk",
	},
	{
		Title:       "System of Rice Intensification (SRI) Method Explained",
		Description: "Detailed explanation of the System of Rice Intensification (SRI) method to boost productivity.",
		YouTubeID:   "TkHgAkJhtqw",
	},
	{
		Title:       "Organic Rice Farming - Regenerative Paddy Cultivation",
		Description: "An in-depth look at organic rice farming practices using regenerative methods.",
		YouTubeID:   "FVtmRf_awBU",
	},
	{
		Title:       "Advanced SRI: Increase Rice Productivity",
		Description: "Advanced techniques in the System of Rice Intensification to increase yield significantly.",
		YouTubeID:   "DEv_rflMhZ8",
	},
	{
		Title:       "Multi Layer Farming | SSIAST | Art of Living",
		Description: "Learn about multi-layer farming techniques from SSIAST at the Art of Living International Center.",
		YouTubeID:   "6NUJMq5LVZs",
	},
	{
		Title:       "SRI Method of Paddy Cultivation | Bhaskar Padire",
		Description: "A practical demonstration of the SRI method for paddy cultivation by Bhaskar Padire.",
		YouTubeID:   "ECWNV7IeU34",
	},
	{
		Title:       "The #1 Secret to Farming Success: Learn Before You Start",
		Description: "Insights into farming success with emphasis on learning and preparation.",
		YouTubeID:   "hB_TedigKz8",
	},
	{
		Title:       "How to Start a Small Farm | A Step-by-Step Guide",
		Description: "Step-by-step guide for starting a small farm and managing it efficiently.",
		YouTubeID:   "heTxEsrPVdQ",
	},
	{
		Title:       "Increasing SRI-Organic Rice Yields through Double Rows Planting",
		Description: "Techniques for increasing rice yields using double rows planting under SRI.",
		YouTubeID:   "wFSJnKmzPjE",
	},
}
