package schema

// CollectionPackTable represents the 'hearth.collection_packs' table
type CollectionPackTable struct {
	Table     string
	PackCode  string
	PackName  string
	Enabled   string
	UpdatedAt string
}

// CollectionPack is the schema definition for hearth.collection_packs
var CollectionPack = CollectionPackTable{
	Table:     "hearth.collection_packs",
	PackCode:  "pack_code",
	PackName:  "pack_name",
	Enabled:   "enabled",
	UpdatedAt: "updated_at",
}
