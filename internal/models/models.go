package models

// Relationship is a relationship record as returned by the platform's
// searchRelationships command.
type Relationship struct {
	ID           string         `json:"id"`
	EntityA      string         `json:"entityA"`
	EntityAType  string         `json:"entityAType"`
	EntityB      string         `json:"entityB"`
	EntityBType  string         `json:"entityBType"`
	Name         string         `json:"name"`
	ReverseName  string         `json:"reverseName"`
	Type         string         `json:"type,omitempty"`
	Sources      []Source       `json:"sources,omitempty"`
	CustomFields map[string]any `json:"CustomFields,omitempty"`
}

// Source is one origin that reported a relationship.
type Source struct {
	Reliability string `json:"reliability,omitempty"`
	Brand       string `json:"brand,omitempty"`
}

// Context is the flattened relationship entry written to the platform
// context. Verbose-only fields are nil unless the projection set them.
type Context struct {
	EntityA      string `json:"EntityA"`
	EntityAType  string `json:"EntityAType"`
	EntityB      string `json:"EntityB"`
	EntityBType  string `json:"EntityBType"`
	Relationship string `json:"Relationship"`
	Reverse      string `json:"Reverse"`
	ID           string `json:"ID"`

	Type              *string `json:"Type,omitempty"`
	Reliability       *string `json:"Reliability,omitempty"`
	Brand             *string `json:"Brand,omitempty"`
	Revoked           any     `json:"Revoked,omitempty"`
	FirstSeenBySource any     `json:"FirstSeenBySource,omitempty"`
	LastSeenBySource  any     `json:"LastSeenBySource,omitempty"`
	Description       any     `json:"Description,omitempty"`
}

// Row returns the context entry as a column-name keyed map for table rendering.
func (c Context) Row() map[string]any {
	row := map[string]any{
		"EntityA":      c.EntityA,
		"EntityAType":  c.EntityAType,
		"EntityB":      c.EntityB,
		"EntityBType":  c.EntityBType,
		"Relationship": c.Relationship,
		"Reverse":      c.Reverse,
		"ID":           c.ID,
	}
	if c.Type != nil {
		row["Type"] = *c.Type
	}
	if c.Reliability != nil {
		row["Reliability"] = *c.Reliability
	}
	if c.Brand != nil {
		row["Brand"] = *c.Brand
	}
	for k, v := range map[string]any{
		"Revoked":           c.Revoked,
		"FirstSeenBySource": c.FirstSeenBySource,
		"LastSeenBySource":  c.LastSeenBySource,
		"Description":       c.Description,
	} {
		if v != nil {
			row[k] = v
		}
	}
	return row
}

// Filter is the payload sent to searchRelationships.
type Filter struct {
	Entities          []string `json:"entities"`
	EntityTypes       []string `json:"entityTypes"`
	RelationshipNames []string `json:"relationshipNames"`
	Size              int      `json:"size"`
	Query             string   `json:"query"`
}

// CommandResults is what a single invocation hands back to its caller.
type CommandResults struct {
	ReadableOutput  string    `json:"readable_output"`
	OutputsPrefix   string    `json:"outputs_prefix"`
	OutputsKeyField string    `json:"outputs_key_field"`
	Outputs         []Context `json:"outputs"`
}

// ContextOutput returns the outputs nested under their prefix, the shape
// downstream steps read from the context.
func (r CommandResults) ContextOutput() map[string][]Context {
	return map[string][]Context{r.OutputsPrefix: r.Outputs}
}
