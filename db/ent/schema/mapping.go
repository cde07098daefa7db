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

// Mapping is a scored association between evidence and a taxonomy entry.
// sentence_id NULL means the mapping is report-level. attack_object_id
// NULL is valid only for sentence-level rows and records an explicitly
// negative training example (the scorer found nothing above its cutoff).
// No uniqueness is enforced: repeated proposals are re-scoring history.
type Mapping struct{ ent.Schema }

func (Mapping) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mappings"},
	}
}

func (Mapping) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// kept redundantly for fast per-report filtering
		field.UUID("report_id", uuid.UUID{}),
		field.UUID("sentence_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("attack_object_id", uuid.UUID{}).Optional().Nillable(),
		field.Float("confidence"),
		field.String("model_name").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Mapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("mappings").
			Field("report_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("sentence", Sentence.Type).
			Ref("mappings").
			Field("sentence_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("attack_object", AttackObject.Type).
			Ref("mappings").
			Field("attack_object_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Mapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
		index.Fields("sentence_id"),
		index.Fields("attack_object_id"),
	}
}
