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

// AttackObject is a taxonomy entry: an ATT&CK technique or group.
// Rows are created by a one-time import and never mutated afterwards.
type AttackObject struct{ ent.Schema }

func (AttackObject) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attack_objects"},
	}
}

func (AttackObject) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.ObjectKinds...)),
		field.String("name").NotEmpty(),
		field.String("stix_id").NotEmpty().Unique(),
		field.String("attack_id").NotEmpty().Unique(),
		field.String("attack_url").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("matrix").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (AttackObject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("mappings", Mapping.Type),
	}
}

func (AttackObject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "attack_id"),
	}
}
