package words

var fourLetter = []string{
	"book", "cake", "door", "coal", "gift", "hand", "isle", "joke", "kite", "lamp",
	"moon", "nest", "oven", "park", "quiz", "rose", "ship", "tree", "unit", "vase",
	"wolf", "yard", "zone", "barn", "coin", "desk", "echo", "farm", "gold", "hill",
	"iron", "jack", "king", "lake", "mask", "note", "pear", "rain", "snow", "tent",
	"user", "veil", "wind", "dove", "yarn", "zinc", "bell", "clay", "frog", "fish",
}

var fiveLetter = []string{
	"apple", "bread", "chair", "dream", "eagle", "flame", "grape", "house", "igloo", "jelly",
	"knife", "lemon", "mouse", "night", "ocean", "piano", "queen", "river", "sheep", "table",
	"uncle", "viper", "whale", "xenon", "yacht", "zebra", "beach", "candy", "dance", "earth",
	"flock", "globe", "heart", "inbox", "jewel", "koala", "leech", "mango", "ninja", "olive",
	"pouch", "quilt", "robot", "sword", "tiger", "ultra", "vivid", "wheat", "xerox", "youth",
}

var sixLetter = []string{
	"banana", "castle", "donkey", "engine", "forest", "guitar", "hammer", "island", "jungle", "kitten",
	"ladder", "magnet", "napkin", "orange", "pencil", "quartz", "rocket", "saddle", "tunnel", "velvet",
	"wallet", "yogurt", "zipper", "beacon", "cactus", "dragon", "empire", "fossil", "goblin", "helmet",
	"insect", "jacket", "lizard", "marble", "nickel", "outlet", "planet", "quiver", "sphinx", "trophy",
	"upward", "violet", "window", "yawner", "zephyr", "bottle", "cannon",
}

// Dictionary returns the target words for a given length, or nil.
func Dictionary(length int) []string {
	switch length {
	case 4:
		return fourLetter
	case 5:
		return fiveLetter
	case 6:
		return sixLetter
	}
	return nil
}
