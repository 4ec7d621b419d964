/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

// defaultTraits is ordered by how the questions were tuned: broad, always
// known traits first, competitive trivia last.
var defaultTraits = []Trait{
	{Key: "starter_pokemon", Category: CategoryOther, Priority: 10.0, Reliability: 2.5, Question: "Is it a starter Pokémon?", Broad: true},
	{Key: "final_evolution", Category: CategoryOther, Priority: 9.5, Reliability: 1.8, Question: "Is it a final evolution (can't evolve further)?"},
	{Key: "is_legendary", Category: CategoryOther, Priority: 9.0, Reliability: 2.0, Question: "Is it a legendary Pokémon?", Broad: true},
	{Key: "is_mythical", Category: CategoryOther, Priority: 8.5, Reliability: 2.0, Question: "Is it a mythical Pokémon?"},
	{Key: "iconic_pokemon", Category: CategoryOther, Priority: 8.0, Question: "Is it an iconic/famous Pokémon?"},

	{Key: "type_fire", Category: CategoryType, Priority: 7.5, Reliability: 1.5, Question: "Is it a Fire-type Pokémon? 🔥"},
	{Key: "type_water", Category: CategoryType, Priority: 7.5, Reliability: 1.5, Question: "Is it a Water-type Pokémon? 💧"},
	{Key: "type_grass", Category: CategoryType, Priority: 7.5, Reliability: 1.5, Question: "Is it a Grass-type Pokémon? 🌿"},
	{Key: "type_electric", Category: CategoryType, Priority: 7.0, Reliability: 1.5, Question: "Is it an Electric-type Pokémon? ⚡"},
	{Key: "type_psychic", Category: CategoryType, Priority: 7.0, Reliability: 1.5, Question: "Is it a Psychic-type Pokémon? 🔮"},
	{Key: "type_dragon", Category: CategoryType, Priority: 6.8, Reliability: 1.5, Question: "Is it a Dragon-type Pokémon? 🐲"},
	{Key: "type_flying", Category: CategoryType, Priority: 6.5, Reliability: 1.3, Question: "Is it a Flying-type Pokémon? 🦅"},
	{Key: "type_fighting", Category: CategoryType, Priority: 6.3, Reliability: 1.3, Question: "Is it a Fighting-type Pokémon? 👊"},
	{Key: "type_poison", Category: CategoryType, Priority: 6.0, Reliability: 1.3, Question: "Is it a Poison-type Pokémon? ☠️"},
	{Key: "type_ground", Category: CategoryType, Priority: 5.8, Question: "Is it a Ground-type Pokémon? 🌍"},
	{Key: "type_rock", Category: CategoryType, Priority: 5.5, Question: "Is it a Rock-type Pokémon? 🗿"},
	{Key: "type_bug", Category: CategoryType, Priority: 5.3, Question: "Is it a Bug-type Pokémon? 🐛"},
	{Key: "type_ghost", Category: CategoryType, Priority: 6.5, Question: "Is it a Ghost-type Pokémon? 👻"},
	{Key: "type_steel", Category: CategoryType, Priority: 5.0, Question: "Is it a Steel-type Pokémon?"},
	{Key: "type_ice", Category: CategoryType, Priority: 5.2, Question: "Is it an Ice-type Pokémon? ❄️"},
	{Key: "type_dark", Category: CategoryType, Priority: 5.8, Question: "Is it a Dark-type Pokémon?"},
	{Key: "type_fairy", Category: CategoryType, Priority: 6.0, Question: "Is it a Fairy-type Pokémon?"},
	{Key: "type_normal", Category: CategoryType, Priority: 4.5, Question: "Is it a Normal-type Pokémon? 😐"},

	{Key: "size_large", Category: CategoryPhysical, Priority: 4.8, Reliability: 1.2, Question: "Is it large in size?"},
	{Key: "size_small", Category: CategoryPhysical, Priority: 4.7, Reliability: 1.2, Question: "Is it small in size?"},
	{Key: "size_medium", Category: CategoryPhysical, Priority: 4.0, Question: "Is it medium in size?"},
	{Key: "weight_heavy", Category: CategoryPhysical, Priority: 4.5, Question: "Is it heavy?"},
	{Key: "weight_light", Category: CategoryPhysical, Priority: 4.3, Question: "Is it light?"},

	{Key: "color_red", Category: CategoryColor, Priority: 4.2, Reliability: 1.1, Question: "Is it primarily red in color?"},
	{Key: "color_blue", Category: CategoryColor, Priority: 4.2, Reliability: 1.1, Question: "Is it primarily blue in color?"},
	{Key: "color_yellow", Category: CategoryColor, Priority: 4.2, Reliability: 1.1, Question: "Is it primarily yellow in color?"},
	{Key: "color_green", Category: CategoryColor, Priority: 4.0, Question: "Is it primarily green in color?"},
	{Key: "color_purple", Category: CategoryColor, Priority: 3.8, Question: "Is it primarily purple in color?"},
	{Key: "color_orange", Category: CategoryColor, Priority: 3.7, Question: "Is it primarily orange in color?"},
	{Key: "color_pink", Category: CategoryColor, Priority: 3.5, Question: "Is it primarily pink in color?"},
	{Key: "color_brown", Category: CategoryColor, Priority: 3.2, Question: "Is it primarily brown in color?"},
	{Key: "color_black", Category: CategoryColor, Priority: 3.8, Question: "Is it primarily black in color?"},
	{Key: "color_white", Category: CategoryColor, Priority: 3.6, Question: "Is it primarily white in color?"},
	{Key: "color_gray", Category: CategoryColor, Priority: 3.0, Question: "Is it primarily gray in color?"},

	{Key: "habitat_cave", Category: CategoryHabitat, Priority: 3.5, Question: "Does it live in caves?"},
	{Key: "habitat_forest", Category: CategoryHabitat, Priority: 3.4, Question: "Does it live in forests?"},
	{Key: "habitat_water", Category: CategoryHabitat, Priority: 3.6, Question: "Does it live in or near fresh water?"},
	{Key: "habitat_mountain", Category: CategoryHabitat, Priority: 3.2, Question: "Does it live in mountains?"},
	{Key: "habitat_grassland", Category: CategoryHabitat, Priority: 3.0, Question: "Does it live in grasslands?"},
	{Key: "habitat_urban", Category: CategoryHabitat, Priority: 3.1, Question: "Does it live in urban areas?"},
	{Key: "habitat_desert", Category: CategoryHabitat, Priority: 2.8, Question: "Does it live in deserts?"},
	{Key: "habitat_sea", Category: CategoryHabitat, Priority: 3.3, Question: "Does it live in the sea?"},

	{Key: "high_attack", Category: CategoryStat, Priority: 2.8, Reliability: 0.8, Question: "Does it have high Attack?"},
	{Key: "high_defense", Category: CategoryStat, Priority: 2.7, Reliability: 0.8, Question: "Does it have high Defense?"},
	{Key: "high_hp", Category: CategoryStat, Priority: 2.6, Question: "Does it have high HP?"},
	{Key: "high_speed", Category: CategoryStat, Priority: 2.9, Reliability: 0.8, Question: "Does it have high Speed?"},
	{Key: "high_sp_attack", Category: CategoryStat, Priority: 2.5, Question: "Does it have high Special Attack?"},
	{Key: "high_sp_defense", Category: CategoryStat, Priority: 2.4, Question: "Does it have high Special Defense?"},
	{Key: "low_attack", Category: CategoryOther, Priority: 2.2, Question: "Does it have low Attack?"},
	{Key: "low_defense", Category: CategoryOther, Priority: 2.2, Question: "Does it have low Defense?"},
	{Key: "low_hp", Category: CategoryOther, Priority: 2.1, Question: "Does it have low HP?"},
	{Key: "low_speed", Category: CategoryOther, Priority: 2.3, Question: "Does it have low Speed?"},

	{Key: "evolves_from_baby", Category: CategoryOther, Priority: 3.3},
	{Key: "has_evolution", Category: CategoryOther, Priority: 3.2},
	{Key: "three_stage_evolution", Category: CategoryOther, Priority: 3.0},
	{Key: "branch_evolution", Category: CategoryOther, Priority: 2.8},

	{Key: "can_mega_evolve", Category: CategoryOther, Priority: 2.5},
	{Key: "has_alolan_form", Category: CategoryOther, Priority: 2.3},
	{Key: "has_galarian_form", Category: CategoryOther, Priority: 2.2},
	{Key: "trade_evolution", Category: CategoryOther, Priority: 2.0},
	{Key: "stone_evolution", Category: CategoryOther, Priority: 2.1},
	{Key: "level_evolution", Category: CategoryOther, Priority: 1.8},

	{Key: "dual_type", Category: CategoryOther, Priority: 2.7},
	{Key: "single_type", Category: CategoryOther, Priority: 2.5},
	{Key: "genderless", Category: CategoryOther, Priority: 2.4},
	{Key: "always_male", Category: CategoryOther, Priority: 2.2},
	{Key: "always_female", Category: CategoryOther, Priority: 2.2},

	{Key: "uber_tier", Category: CategoryOther, Priority: 1.9},
	{Key: "ou_tier", Category: CategoryOther, Priority: 1.7},
	{Key: "uu_tier", Category: CategoryOther, Priority: 1.5},
	{Key: "ru_tier", Category: CategoryOther, Priority: 1.3},
	{Key: "nu_tier", Category: CategoryOther, Priority: 1.2},
	{Key: "pu_tier", Category: CategoryOther, Priority: 1.1},
}

// DefaultIconic is the allow-list of famous entities favoured when final
// candidates are tied.
var DefaultIconic = []string{
	"pikachu", "charizard", "blastoise", "venusaur", "mewtwo", "mew",
	"lugia", "ho-oh", "rayquaza", "arceus", "dialga", "palkia",
	"giratina", "reshiram", "zekrom", "kyurem", "xerneas", "yveltal",
}

// DefaultRareTypes are type tags that make an entity stand out in a tie.
var DefaultRareTypes = []string{"dragon", "ghost", "psychic", "electric"}

// DefaultCatalog returns the built-in trait catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTraits)
	if err != nil {
		panic("guesser: built-in catalog is invalid: " + err.Error())
	}

	return c
}
