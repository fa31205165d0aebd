package catalog

// Category ids referenced by cards and the bonus aggregator.
const (
	CategoryPersoenlichkeiten = "persoenlichkeiten"
	CategoryMaskottchen       = "maskottchen"
	CategoryWahrzeichen       = "wahrzeichen"
)

// Country codes referenced by cards and country set bonuses.
const (
	CountryDeutschland = "deutschland"
	CountryOesterreich = "oesterreich"
	CountrySchweiz     = "schweiz"
)

// Categories declares the card groupings and their set-bonus rules. The
// completion effects are data on purpose: the aggregator applies whatever is
// listed here instead of special-casing category ids.
var Categories = []Category{
	{
		ID:               CategoryPersoenlichkeiten,
		Name:             "Persönlichkeiten",
		Icon:             "person",
		PartialThreshold: 2,
		PartialLabel:     "+5 XP pro Quest",
		CompleteLabel:    "+25% XP & +10% Rabatt",
		CompleteEffects: []BonusEffect{
			{Kind: BonusXPMultiplier, Value: 1.25},
			{Kind: BonusDiscount, Value: 10},
		},
	},
	{
		ID:            CategoryMaskottchen,
		Name:          "Maskottchen",
		Icon:          "paw",
		PartialLabel:  "Maskottchen-Fan",
		CompleteLabel: "+10% Rabatt",
		CompleteEffects: []BonusEffect{
			{Kind: BonusDiscount, Value: 10},
		},
	},
	{
		ID:            CategoryWahrzeichen,
		Name:          "Wahrzeichen",
		Icon:          "landmark",
		PartialLabel:  "Stadterkunder",
		CompleteLabel: "Wahrzeichen-Kenner",
	},
}

// Countries declares the country groupings. Completing a country's full card
// set multiplies the XP multiplier by BonusMultiplier.
var Countries = []Country{
	{Code: CountryDeutschland, Name: "Deutschland", Flag: "🇩🇪", BonusMultiplier: 1.2},
	{Code: CountryOesterreich, Name: "Österreich", Flag: "🇦🇹", BonusMultiplier: 1.15},
	{Code: CountrySchweiz, Name: "Schweiz", Flag: "🇨🇭", BonusMultiplier: 1.15},
}

// Cards is the full collectible catalog. Ids are stable identifiers encoded
// in the QR codes placed at points of interest.
var Cards = []Card{
	{
		ID:       "card_ivo",
		Name:     "Ivo",
		Category: CategoryPersoenlichkeiten,
		Country:  CountryDeutschland,
		Rarity:   RarityRare,
		Bonus:    &BonusEffect{Kind: BonusXPMultiplier, Value: 1.1},
	},
	{
		ID:       "card_marcus",
		Name:     "Marcus",
		Category: CategoryPersoenlichkeiten,
		Country:  CountryDeutschland,
		Rarity:   RarityUncommon,
		Bonus:    &BonusEffect{Kind: BonusQuestXP, Value: 25},
	},
	{
		ID:       "card_ramy",
		Name:     "Ramy",
		Category: CategoryPersoenlichkeiten,
		Country:  CountryDeutschland,
		Rarity:   RarityUncommon,
		Bonus:    &BonusEffect{Kind: BonusSocial, Value: 1.15},
	},
	{
		ID:       "card_roland",
		Name:     "Roland",
		Category: CategoryPersoenlichkeiten,
		Country:  CountryDeutschland,
		Rarity:   RarityEpic,
		Bonus:    &BonusEffect{Kind: BonusDiscount, Value: 0.15},
	},
	{
		ID:       "card_paulinchen",
		Name:     "Paulinchen",
		Category: CategoryMaskottchen,
		Country:  CountryDeutschland,
		Rarity:   RarityCommon,
		Bonus:    &BonusEffect{Kind: BonusQuestXP, Value: 10},
	},
	{
		ID:       "card_bruno",
		Name:     "Bruno",
		Category: CategoryMaskottchen,
		Country:  CountryOesterreich,
		Rarity:   RarityCommon,
	},
	{
		ID:       "card_heidi",
		Name:     "Heidi",
		Category: CategoryMaskottchen,
		Country:  CountrySchweiz,
		Rarity:   RarityUncommon,
		Bonus:    &BonusEffect{Kind: BonusSocial, Value: 1.05},
	},
	{
		ID:       "card_brandenburger_tor",
		Name:     "Brandenburger Tor",
		Category: CategoryWahrzeichen,
		Country:  CountryDeutschland,
		Rarity:   RarityRare,
		Bonus:    &BonusEffect{Kind: BonusXPMultiplier, Value: 1.05},
	},
	{
		ID:       "card_stephansdom",
		Name:     "Stephansdom",
		Category: CategoryWahrzeichen,
		Country:  CountryOesterreich,
		Rarity:   RarityRare,
	},
	{
		ID:       "card_matterhorn",
		Name:     "Matterhorn",
		Category: CategoryWahrzeichen,
		Country:  CountrySchweiz,
		Rarity:   RarityEpic,
		Bonus:    &BonusEffect{Kind: BonusXPMultiplier, Value: 1.1},
	},
	{
		ID:       "card_neuschwanstein",
		Name:     "Schloss Neuschwanstein",
		Category: CategoryWahrzeichen,
		Country:  CountryDeutschland,
		Rarity:   RarityLegendary,
		Bonus:    &BonusEffect{Kind: BonusXPMultiplier, Value: 1.2},
	},
}
