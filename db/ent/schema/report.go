package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Report is the analysis result for a document. It owns its sentences,
// indicators and mappings; deleting a report cascades to all three.
type Report struct{ ent.Schema }

func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// reports can be created independently of a document
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		field.Text("text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("created_by").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("reports").
			Field("document_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sentences", Sentence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("indicators", Indicator.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mappings", Mapping.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
