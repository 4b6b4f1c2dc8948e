package models

import (
	"fmt"
	"time"
)

// EntityType identifies one independent cache/TTL/gateway unit
type EntityType string

const (
	EntityProducts      EntityType = "products"      // price list
	EntityClients       EntityType = "clients"       // CRM clients
	EntityInstallations EntityType = "installations" // solar installations
	EntitySessions      EntityType = "sessions"      // maintenance sessions
)

// ttls freshness window per entity type.
// Design constant: callers cannot override it per call.
var ttls = map[EntityType]time.Duration{
	EntityProducts:      24 * time.Hour,
	EntityClients:       time.Hour,
	EntityInstallations: time.Hour,
	EntitySessions:      5 * time.Minute,
}

// AllEntities returns every entity type in a stable order
func AllEntities() []EntityType {
	return []EntityType{EntityProducts, EntityClients, EntityInstallations, EntitySessions}
}

// ParseEntity converts user input (singular or plural) into an EntityType
func ParseEntity(s string) (EntityType, error) {
	switch s {
	case "products", "product":
		return EntityProducts, nil
	case "clients", "client":
		return EntityClients, nil
	case "installations", "installation":
		return EntityInstallations, nil
	case "sessions", "session":
		return EntitySessions, nil
	default:
		return "", fmt.Errorf("unknown entity type: %s. Use: products, clients, installations or sessions", s)
	}
}

// TTL returns the maximum cache age before entries of this type are stale
func (e EntityType) TTL() time.Duration {
	return ttls[e]
}

// CacheKey key holding the serialized payload
func (e EntityType) CacheKey() string {
	return string(e) + "_cache"
}

// CacheTimestampKey sibling key holding the write time in milliseconds
func (e EntityType) CacheTimestampKey() string {
	return string(e) + "_cache_timestamp"
}

// SyncStatusKey key holding the last SyncStatus
func (e EntityType) SyncStatusKey() string {
	return string(e) + "_sync_status"
}

// String implements fmt.Stringer
func (e EntityType) String() string {
	return string(e)
}
