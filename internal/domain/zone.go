package domain

import (
	"strings"
	"time"
)

// Zone is a geographic service area (or the remote "visio" zone)
type Zone struct {
	ID        int64
	Name      string
	Color     *string // CSS color for calendar display
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVisio returns true for the zone reserved for remote meetings
func (z *Zone) IsVisio() bool {
	return IsVisioZoneName(z.Name)
}

// IsVisioZoneName matches the visio zone name case-insensitively
func IsVisioZoneName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), VisioZoneName)
}

// FindVisioZone returns the visio zone from the list, or nil
func FindVisioZone(zones []*Zone) *Zone {
	for _, z := range zones {
		if z.IsVisio() {
			return z
		}
	}
	return nil
}

// FindZoneByName looks a zone up by name, case-insensitively
func FindZoneByName(zones []*Zone, name string) *Zone {
	name = strings.TrimSpace(name)
	for _, z := range zones {
		if strings.EqualFold(z.Name, name) {
			return z
		}
	}
	return nil
}

// ZoneIndex maps zone id to zone
func ZoneIndex(zones []*Zone) map[int64]*Zone {
	idx := make(map[int64]*Zone, len(zones))
	for _, z := range zones {
		idx[z.ID] = z
	}
	return idx
}
