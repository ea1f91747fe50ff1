package postgres_adapter

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"
)

// listingSelect is the base projection for listing search: listings joined
// with their property, type and location, plus the lowest-id photo as the
// primary image.
const listingSelect = `
	SELECT l.id,
	       l.title,
	       ls.name AS status,
	       l.list_price,
	       pt.name AS property_type,
	       p.rooms,
	       p.living_area_sqm,
	       loc.city,
	       lm.url AS image
	FROM listings l
	JOIN listing_status ls ON l.status_id = ls.id
	JOIN listing_properties lp ON l.id = lp.listing_id
	LEFT JOIN listing_media lm ON l.id = lm.listing_id
	    AND lm.media_type_id = 1
	    AND lm.id = (
	        SELECT MIN(id)
	        FROM listing_media
	        WHERE listing_id = l.id AND media_type_id = 1
	    )
	JOIN properties p ON lp.property_id = p.id
	JOIN property_types pt ON p.property_type_id = pt.id
	JOIN locations loc ON p.location_id = loc.id`

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(format string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(format, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// addRange applies inclusive bounds independently. An inverted range is not
// validated; it simply matches nothing.
func (qb *queryBuilder) addRange(field string, min, max *float64) {
	if min != nil {
		qb.addCondition(field+" >= $%d", *min)
	}
	if max != nil {
		qb.addCondition(field+" <= $%d", *max)
	}
}

func (qb *queryBuilder) whereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "\n\tWHERE " + strings.Join(qb.conditions, " AND ")
}

// buildSearchQuery compiles the optional filters into one parameterized
// query. All filters AND together; the property-type set is a disjunction
// within its single condition. Ordering is always ascending by listing id so
// pagination stays stable, and limit/offset are bound args applied last.
func buildSearchQuery(filters domain.ListingFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	if filters.FreeText != "" {
		// Prefix match on title or city; one bound term, referenced twice.
		cond := fmt.Sprintf("(l.title ILIKE $%d OR loc.city ILIKE $%d)", qb.argID, qb.argID)
		qb.conditions = append(qb.conditions, cond)
		qb.args = append(qb.args, filters.FreeText+"%")
		qb.argID++
	}
	if filters.Status != "" {
		qb.addCondition("ls.name = $%d", filters.Status)
	}
	if filters.City != "" {
		qb.addCondition("loc.city ILIKE $%d", "%"+filters.City+"%")
	}

	qb.addRange("l.list_price", filters.PriceMin, filters.PriceMax)
	qb.addRange("p.rooms", filters.RoomsMin, filters.RoomsMax)

	if len(filters.PropertyTypes) > 0 {
		qb.addCondition("pt.name = ANY($%d)", filters.PropertyTypes)
	}

	query := listingSelect + qb.whereClause() + "\n\tORDER BY l.id"

	if filters.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", qb.argID)
		qb.args = append(qb.args, *filters.Limit)
		qb.argID++
	}
	if filters.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", qb.argID)
		qb.args = append(qb.args, *filters.Offset)
		qb.argID++
	}

	return query, qb.args
}
