package relcontext

import "github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"

// ToContext projects relationship records into context entries, keeping
// their order. Verbose adds the type, the first source's reliability and
// brand, and the revoked/seen/description custom fields.
func ToContext(rels []models.Relationship, verbose bool) []models.Context {
	out := make([]models.Context, 0, len(rels))
	for _, r := range rels {
		c := models.Context{
			EntityA:      r.EntityA,
			EntityAType:  r.EntityAType,
			EntityB:      r.EntityB,
			EntityBType:  r.EntityBType,
			Relationship: r.Name,
			Reverse:      r.ReverseName,
			ID:           r.ID,
		}
		if verbose {
			addVerbose(&c, r)
		}
		out = append(out, c)
	}
	return out
}

func addVerbose(c *models.Context, r models.Relationship) {
	typ := r.Type
	c.Type = &typ

	if len(r.Sources) > 0 {
		reliability, brand := r.Sources[0].Reliability, r.Sources[0].Brand
		c.Reliability = &reliability
		c.Brand = &brand
	}

	if len(r.CustomFields) > 0 {
		c.Revoked = field(r.CustomFields, "revoked")
		c.FirstSeenBySource = field(r.CustomFields, "firstseenbysource")
		c.LastSeenBySource = field(r.CustomFields, "lastseenbysource")
		c.Description = field(r.CustomFields, "description")
	}
}

// field returns fields[key], or "" when the key is missing.
func field(fields map[string]any, key string) any {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return v
}
