package domain

import "strings"

// ResourceType tells which storage backend a map or demo was found in.
// The order of the constants is the listing order.
type ResourceType int

const (
	ResourceFolder ResourceType = iota // Loose file under the mod folder
	ResourcePAK                        // Entry of a .pak archive
	ResourcePK3                        // Entry of a .pk3 (zip) archive
)

func (r ResourceType) String() string {
	switch r {
	case ResourceFolder:
		return "folder"
	case ResourcePAK:
		return "pak"
	case ResourcePK3:
		return "pk3"
	default:
		return "unknown"
	}
}

// ItemType is a launch parameter kind. Each game maps every kind to a
// command-line template.
type ItemType int

const (
	ItemEngine ItemType = iota
	ItemResolution
	ItemGame
	ItemMod
	ItemMap
	ItemSkill
	ItemClass
	ItemDemo
)

func (t ItemType) String() string {
	switch t {
	case ItemEngine:
		return "engine"
	case ItemResolution:
		return "resolution"
	case ItemGame:
		return "game"
	case ItemMod:
		return "mod"
	case ItemMap:
		return "map"
	case ItemSkill:
		return "skill"
	case ItemClass:
		return "class"
	case ItemDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// ParseItemType converts a string to ItemType
func ParseItemType(s string) (ItemType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "engine":
		return ItemEngine, nil
	case "resolution":
		return ItemResolution, nil
	case "game":
		return ItemGame, nil
	case "mod":
		return ItemMod, nil
	case "map":
		return ItemMap, nil
	case "skill":
		return ItemSkill, nil
	case "class":
		return ItemClass, nil
	case "demo":
		return ItemDemo, nil
	default:
		return 0, ErrUnknownItemType
	}
}

// GameItem is an official content variant of a game, e.g. a mission pack.
type GameItem struct {
	Title  string // Display name, e.g. "MP1: Scourge of Armagon"
	Folder string // Folder under the game path, e.g. "hipnotic"
	Arg    string // Launch flag that activates it, e.g. "-hipnotic"
}

// Option is a skill or class choice.
type Option struct {
	Label   string // Display label
	Value   string // Raw launch value, empty for the synthetic Default entry
	Default bool   // Game's default choice, or the synthetic Default entry
	Random  bool   // Synthetic "pick one at random" entry
}

var (
	// DefaultOption leaves the parameter off the command line.
	DefaultOption = Option{Label: "Default", Default: true}
	// RandomOption asks for a random real option at launch.
	RandomOption = Option{Label: "Random", Random: true}
)

// IsSynthetic reports whether the option was added by the launcher rather than the game.
func (o Option) IsSynthetic() bool {
	return o.Random || (o.Default && o.Value == "")
}
