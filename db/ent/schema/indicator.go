package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Indicator is an extracted artifact (type + value) scoped to a report.
type Indicator struct{ ent.Schema }

func (Indicator) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "indicators"},
	}
}

func (Indicator) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("report_id", uuid.UUID{}),
		field.String("indicator_type").NotEmpty(),
		field.String("value").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Indicator) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("indicators").
			Field("report_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Indicator) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
	}
}
