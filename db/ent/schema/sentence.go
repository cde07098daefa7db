package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/db/ent/schema/utils"
)

// Sentence is one unit of evidence in a report. A sentence requires both
// its report and (when derived from ingestion) its document to exist;
// removing either destroys it.
type Sentence struct{ ent.Schema }

func (Sentence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sentences"},
	}
}

func (Sentence) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Text("text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.UUID("report_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		// sentences with lower numbers are displayed first
		field.Int("order").Default(constants.SentenceOrderStride),
		// NULL means pending review
		field.String("disposition").Optional().Nillable().
			Validate(utils.EnumValidator(constants.Dispositions...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Sentence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("sentences").
			Field("report_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("document", Document.Type).
			Ref("sentences").
			Field("document_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mappings", Mapping.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Sentence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "order"),
		index.Fields("document_id"),
		index.Fields("disposition"),
	}
}
