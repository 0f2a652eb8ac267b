package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Mark
	Link
	Search
	Copy
	Movie
	Series
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟨",
	},
	Mark: {
		emoji:   "🔖",
		nerd:    "",
		plain:   "*",
		kaomoji: "(*^▽^*)",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "(づ｡◕‿‿◕｡)づ",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ )?",
		squares: "🟫",
	},
	Copy: {
		emoji:   "📋",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ง'̀-'́)ง",
		squares: "⬜",
	},
	Movie: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "M",
		kaomoji: "(⌐■_■)",
		squares: "🟧",
	},
	Series: {
		emoji:   "📺",
		nerd:    "",
		plain:   "S",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "⬛",
	},
}
