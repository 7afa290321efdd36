package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/errors"
)

// SQLite is the default store backend: an embedded single-file database
// holding the reference dataset. Opened once per run and shared
// read-only across the translator and the resolvers.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) a SQLite mapping store
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Store("failed to create store directory", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_sync=NORMAL")
	if err != nil {
		return nil, errors.Store("failed to open store", err)
	}

	s := &SQLite{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, errors.Store("failed to initialize store schema", err)
	}

	return s, nil
}

func (s *SQLite) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS instance_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider TEXT NOT NULL,
		instance_type TEXT NOT NULL,
		vcpu INTEGER NOT NULL,
		memory_gb REAL NOT NULL,
		family TEXT,
		generation TEXT,
		network_performance TEXT,
		storage_type TEXT,
		storage_gb INTEGER,
		gpu_count INTEGER DEFAULT 0,
		gpu_type TEXT,
		hourly_price REAL,
		UNIQUE(provider, instance_type)
	);

	CREATE TABLE IF NOT EXISTS regions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider TEXT NOT NULL,
		region_code TEXT NOT NULL,
		region_name TEXT NOT NULL,
		country TEXT,
		continent TEXT,
		latitude REAL,
		longitude REAL,
		UNIQUE(provider, region_code)
	);

	CREATE TABLE IF NOT EXISTS resource_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider TEXT NOT NULL,
		resource_category TEXT NOT NULL,
		native_type TEXT NOT NULL,
		UNIQUE(provider, native_type)
	);

	CREATE TABLE IF NOT EXISTS images (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider TEXT NOT NULL,
		image_name TEXT NOT NULL,
		os_family TEXT NOT NULL,
		os_version TEXT,
		architecture TEXT DEFAULT 'x86_64',
		UNIQUE(provider, image_name)
	);

	CREATE INDEX IF NOT EXISTS idx_instance_specs ON instance_types(vcpu, memory_gb, family);
	CREATE INDEX IF NOT EXISTS idx_region_location ON regions(latitude, longitude);
	CREATE INDEX IF NOT EXISTS idx_image_os ON images(os_family, os_version);
	`

	_, err := s.db.Exec(schema)
	return err
}

// PutInstanceSpec inserts or replaces an instance spec
func (s *SQLite) PutInstanceSpec(spec types.InstanceSpec) error {
	price, _ := spec.HourlyPrice.Float64()
	_, err := s.db.Exec(`
		INSERT INTO instance_types
		(provider, instance_type, vcpu, memory_gb, family, generation,
		 network_performance, storage_type, storage_gb, gpu_count, gpu_type, hourly_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(provider, instance_type) DO UPDATE SET
			vcpu=excluded.vcpu, memory_gb=excluded.memory_gb, family=excluded.family,
			generation=excluded.generation, network_performance=excluded.network_performance,
			storage_type=excluded.storage_type, storage_gb=excluded.storage_gb,
			gpu_count=excluded.gpu_count, gpu_type=excluded.gpu_type,
			hourly_price=excluded.hourly_price`,
		spec.Provider.String(), spec.InstanceType, spec.VCPU, spec.MemoryGB,
		spec.Family, spec.Generation, spec.NetworkPerformance, spec.StorageType,
		spec.StorageGB, spec.GPUCount, spec.GPUType, price)
	return err
}

// PutRegion inserts or replaces a region
func (s *SQLite) PutRegion(region types.Region) error {
	_, err := s.db.Exec(`
		INSERT INTO regions
		(provider, region_code, region_name, country, continent, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(provider, region_code) DO UPDATE SET
			region_name=excluded.region_name, country=excluded.country,
			continent=excluded.continent, latitude=excluded.latitude,
			longitude=excluded.longitude`,
		region.Provider.String(), region.Code, region.Name, region.Country,
		region.Continent, region.Latitude, region.Longitude)
	return err
}

// PutResourceType inserts or replaces a resource-type mapping.
// A replaced row keeps its id, so the tie-break order is stable.
func (s *SQLite) PutResourceType(mapping types.ResourceTypeMapping) error {
	_, err := s.db.Exec(`
		INSERT INTO resource_types (provider, resource_category, native_type)
		VALUES (?, ?, ?)
		ON CONFLICT(provider, native_type) DO UPDATE SET
			resource_category=excluded.resource_category`,
		mapping.Provider.String(), mapping.Category, mapping.NativeType)
	return err
}

// PutImage inserts or replaces an image
func (s *SQLite) PutImage(image types.ImageMapping) error {
	arch := image.Architecture
	if arch == "" {
		arch = "x86_64"
	}
	_, err := s.db.Exec(`
		INSERT INTO images (provider, image_name, os_family, os_version, architecture)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(provider, image_name) DO UPDATE SET
			os_family=excluded.os_family, os_version=excluded.os_version,
			architecture=excluded.architecture`,
		image.Provider.String(), image.ImageName, image.OSFamily, image.OSVersion, arch)
	return err
}

const instanceColumns = `provider, instance_type, vcpu, memory_gb,
	COALESCE(family, ''), COALESCE(generation, ''), COALESCE(network_performance, ''),
	COALESCE(storage_type, ''), COALESCE(storage_gb, 0), COALESCE(gpu_count, 0),
	COALESCE(gpu_type, ''), COALESCE(hourly_price, 0)`

func scanInstance(row interface{ Scan(...interface{}) error }) (types.InstanceSpec, error) {
	var spec types.InstanceSpec
	var provider string
	var price float64
	err := row.Scan(&provider, &spec.InstanceType, &spec.VCPU, &spec.MemoryGB,
		&spec.Family, &spec.Generation, &spec.NetworkPerformance,
		&spec.StorageType, &spec.StorageGB, &spec.GPUCount, &spec.GPUType, &price)
	if err != nil {
		return spec, err
	}
	spec.Provider = types.Provider(provider)
	spec.HourlyPrice = decimal.NewFromFloat(price)
	return spec, nil
}

// GetInstanceSpec returns the spec for (provider, instanceType), or nil
func (s *SQLite) GetInstanceSpec(provider types.Provider, instanceType string) (*types.InstanceSpec, error) {
	row := s.db.QueryRow(`SELECT `+instanceColumns+` FROM instance_types
		WHERE provider = ? AND instance_type = ?`, provider.String(), instanceType)
	spec, err := scanInstance(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Store("instance spec query failed", err)
	}
	return &spec, nil
}

// ListInstanceSpecs returns every instance spec for a provider
func (s *SQLite) ListInstanceSpecs(provider types.Provider) ([]types.InstanceSpec, error) {
	rows, err := s.db.Query(`SELECT `+instanceColumns+` FROM instance_types
		WHERE provider = ? ORDER BY id`, provider.String())
	if err != nil {
		return nil, errors.Store("instance spec query failed", err)
	}
	defer rows.Close()

	var out []types.InstanceSpec
	for rows.Next() {
		spec, err := scanInstance(rows)
		if err != nil {
			return nil, errors.Store("instance spec scan failed", err)
		}
		out = append(out, spec)
	}
	return out, rows.Err()
}

func scanRegion(row interface{ Scan(...interface{}) error }) (types.Region, error) {
	var region types.Region
	var provider string
	err := row.Scan(&provider, &region.Code, &region.Name, &region.Country,
		&region.Continent, &region.Latitude, &region.Longitude)
	region.Provider = types.Provider(provider)
	return region, err
}

const regionColumns = `provider, region_code, region_name,
	COALESCE(country, ''), COALESCE(continent, ''),
	COALESCE(latitude, 0), COALESCE(longitude, 0)`

// GetRegion returns the region for (provider, code), or nil
func (s *SQLite) GetRegion(provider types.Provider, code string) (*types.Region, error) {
	row := s.db.QueryRow(`SELECT `+regionColumns+` FROM regions
		WHERE provider = ? AND region_code = ?`, provider.String(), code)
	region, err := scanRegion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Store("region query failed", err)
	}
	return &region, nil
}

// ListRegions returns every region for a provider
func (s *SQLite) ListRegions(provider types.Provider) ([]types.Region, error) {
	rows, err := s.db.Query(`SELECT `+regionColumns+` FROM regions
		WHERE provider = ? ORDER BY id`, provider.String())
	if err != nil {
		return nil, errors.Store("region query failed", err)
	}
	defer rows.Close()

	var out []types.Region
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, errors.Store("region scan failed", err)
		}
		out = append(out, region)
	}
	return out, rows.Err()
}

// GetResourceCategory returns the category of a native type, any provider
func (s *SQLite) GetResourceCategory(nativeType string) (string, bool, error) {
	var category string
	err := s.db.QueryRow(`SELECT resource_category FROM resource_types
		WHERE native_type = ? ORDER BY id LIMIT 1`, nativeType).Scan(&category)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Store("resource category query failed", err)
	}
	return category, true, nil
}

// ListResourceTypes returns the mappings for (provider, category) in
// insertion order
func (s *SQLite) ListResourceTypes(provider types.Provider, category string) ([]types.ResourceTypeMapping, error) {
	rows, err := s.db.Query(`SELECT id, provider, resource_category, native_type
		FROM resource_types WHERE provider = ? AND resource_category = ?
		ORDER BY id`, provider.String(), category)
	if err != nil {
		return nil, errors.Store("resource type query failed", err)
	}
	defer rows.Close()
	return scanResourceTypes(rows)
}

// ListAllResourceTypes returns every mapping for a provider
func (s *SQLite) ListAllResourceTypes(provider types.Provider) ([]types.ResourceTypeMapping, error) {
	rows, err := s.db.Query(`SELECT id, provider, resource_category, native_type
		FROM resource_types WHERE provider = ? ORDER BY id`, provider.String())
	if err != nil {
		return nil, errors.Store("resource type query failed", err)
	}
	defer rows.Close()
	return scanResourceTypes(rows)
}

func scanResourceTypes(rows *sql.Rows) ([]types.ResourceTypeMapping, error) {
	var out []types.ResourceTypeMapping
	for rows.Next() {
		var mapping types.ResourceTypeMapping
		var provider string
		if err := rows.Scan(&mapping.Seq, &provider, &mapping.Category, &mapping.NativeType); err != nil {
			return nil, errors.Store("resource type scan failed", err)
		}
		mapping.Provider = types.Provider(provider)
		out = append(out, mapping)
	}
	return out, rows.Err()
}

const imageColumns = `provider, image_name, os_family, COALESCE(os_version, ''), COALESCE(architecture, '')`

func scanImage(row interface{ Scan(...interface{}) error }) (types.ImageMapping, error) {
	var image types.ImageMapping
	var provider string
	err := row.Scan(&provider, &image.ImageName, &image.OSFamily, &image.OSVersion, &image.Architecture)
	image.Provider = types.Provider(provider)
	return image, err
}

// GetImage returns the image for (provider, imageName), or nil
func (s *SQLite) GetImage(provider types.Provider, imageName string) (*types.ImageMapping, error) {
	row := s.db.QueryRow(`SELECT `+imageColumns+` FROM images
		WHERE provider = ? AND image_name = ?`, provider.String(), imageName)
	image, err := scanImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Store("image query failed", err)
	}
	return &image, nil
}

// FindImageEquivalent returns the provider's first image with the exact
// (osFamily, osVersion) pair, or nil
func (s *SQLite) FindImageEquivalent(provider types.Provider, osFamily, osVersion string) (*types.ImageMapping, error) {
	row := s.db.QueryRow(`SELECT `+imageColumns+` FROM images
		WHERE provider = ? AND os_family = ? AND os_version = ?
		ORDER BY id LIMIT 1`, provider.String(), osFamily, osVersion)
	image, err := scanImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Store("image query failed", err)
	}
	return &image, nil
}

// ListImages returns every image for a provider
func (s *SQLite) ListImages(provider types.Provider) ([]types.ImageMapping, error) {
	rows, err := s.db.Query(`SELECT `+imageColumns+` FROM images
		WHERE provider = ? ORDER BY id`, provider.String())
	if err != nil {
		return nil, errors.Store("image query failed", err)
	}
	defer rows.Close()

	var out []types.ImageMapping
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, errors.Store("image scan failed", err)
		}
		out = append(out, image)
	}
	return out, rows.Err()
}

// Providers returns the providers present in the store
func (s *SQLite) Providers() ([]types.Provider, error) {
	rows, err := s.db.Query(`
		SELECT provider FROM instance_types
		UNION SELECT provider FROM regions
		UNION SELECT provider FROM resource_types
		ORDER BY provider`)
	if err != nil {
		return nil, errors.Store("provider query failed", err)
	}
	defer rows.Close()

	var out []types.Provider
	for rows.Next() {
		var provider string
		if err := rows.Scan(&provider); err != nil {
			return nil, errors.Store("provider scan failed", err)
		}
		out = append(out, types.Provider(provider))
	}
	return out, rows.Err()
}

// Close releases the database handle
func (s *SQLite) Close() error {
	return s.db.Close()
}
