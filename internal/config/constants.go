package config

const (
	// Catalog file locations, relative to CatalogDir
	DefaultCatalogDir = "configs/parts"

	CatalogFilePowers     = "powers.json"
	CatalogFileTechniques = "techniques.json"
	CatalogFileItems      = "items.json"

	// DefaultSnapshotTTL is how long catalog snapshots stay cached before
	// being rebuilt from the database.
	DefaultSnapshotTTL = "5m"
)
