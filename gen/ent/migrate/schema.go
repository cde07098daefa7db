// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttackObjectsColumns holds the columns for the "attack_objects" table.
	AttackObjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "stix_id", Type: field.TypeString, Unique: true},
		{Name: "attack_id", Type: field.TypeString, Unique: true},
		{Name: "attack_url", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "matrix", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AttackObjectsTable holds the schema information for the "attack_objects" table.
	AttackObjectsTable = &schema.Table{
		Name:       "attack_objects",
		Columns:    AttackObjectsColumns,
		PrimaryKey: []*schema.Column{AttackObjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attackobject_kind_attack_id",
				Unique:  false,
				Columns: []*schema.Column{AttackObjectsColumns[1], AttackObjectsColumns[4]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
		},
	}
	// IndicatorsColumns holds the columns for the "indicators" table.
	IndicatorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "indicator_type", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// IndicatorsTable holds the schema information for the "indicators" table.
	IndicatorsTable = &schema.Table{
		Name:       "indicators",
		Columns:    IndicatorsColumns,
		PrimaryKey: []*schema.Column{IndicatorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "indicators_reports_indicators",
				Columns:    []*schema.Column{IndicatorsColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "indicator_report_id",
				Unique:  false,
				Columns: []*schema.Column{IndicatorsColumns[5]},
			},
		},
	}
	// IngestJobsColumns holds the columns for the "ingest_jobs" table.
	IngestJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "message", Type: field.TypeString, Size: 16384, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// IngestJobsTable holds the schema information for the "ingest_jobs" table.
	IngestJobsTable = &schema.Table{
		Name:       "ingest_jobs",
		Columns:    IngestJobsColumns,
		PrimaryKey: []*schema.Column{IngestJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ingest_jobs_documents_jobs",
				Columns:    []*schema.Column{IngestJobsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ingestjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[1], IngestJobsColumns[4]},
			},
			{
				Name:    "ingestjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[6]},
			},
		},
	}
	// MappingsColumns holds the columns for the "mappings" table.
	MappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "attack_object_id", Type: field.TypeUUID, Nullable: true},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "sentence_id", Type: field.TypeUUID, Nullable: true},
	}
	// MappingsTable holds the schema information for the "mappings" table.
	MappingsTable = &schema.Table{
		Name:       "mappings",
		Columns:    MappingsColumns,
		PrimaryKey: []*schema.Column{MappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mappings_attack_objects_mappings",
				Columns:    []*schema.Column{MappingsColumns[5]},
				RefColumns: []*schema.Column{AttackObjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "mappings_reports_mappings",
				Columns:    []*schema.Column{MappingsColumns[6]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "mappings_sentences_mappings",
				Columns:    []*schema.Column{MappingsColumns[7]},
				RefColumns: []*schema.Column{SentencesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mapping_report_id",
				Unique:  false,
				Columns: []*schema.Column{MappingsColumns[6]},
			},
			{
				Name:    "mapping_sentence_id",
				Unique:  false,
				Columns: []*schema.Column{MappingsColumns[7]},
			},
			{
				Name:    "mapping_attack_object_id",
				Unique:  false,
				Columns: []*schema.Column{MappingsColumns[5]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_documents_reports",
				Columns:    []*schema.Column{ReportsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SentencesColumns holds the columns for the "sentences" table.
	SentencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "order", Type: field.TypeInt, Default: 1000},
		{Name: "disposition", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// SentencesTable holds the schema information for the "sentences" table.
	SentencesTable = &schema.Table{
		Name:       "sentences",
		Columns:    SentencesColumns,
		PrimaryKey: []*schema.Column{SentencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sentences_documents_sentences",
				Columns:    []*schema.Column{SentencesColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "sentences_reports_sentences",
				Columns:    []*schema.Column{SentencesColumns[7]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sentence_report_id_order",
				Unique:  false,
				Columns: []*schema.Column{SentencesColumns[7], SentencesColumns[2]},
			},
			{
				Name:    "sentence_document_id",
				Unique:  false,
				Columns: []*schema.Column{SentencesColumns[6]},
			},
			{
				Name:    "sentence_disposition",
				Unique:  false,
				Columns: []*schema.Column{SentencesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttackObjectsTable,
		DocumentsTable,
		IndicatorsTable,
		IngestJobsTable,
		MappingsTable,
		ReportsTable,
		SentencesTable,
	}
)

func init() {
	AttackObjectsTable.Annotation = &entsql.Annotation{
		Table: "attack_objects",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	IndicatorsTable.ForeignKeys[0].RefTable = ReportsTable
	IndicatorsTable.Annotation = &entsql.Annotation{
		Table: "indicators",
	}
	IngestJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	IngestJobsTable.Annotation = &entsql.Annotation{
		Table: "ingest_jobs",
	}
	MappingsTable.ForeignKeys[0].RefTable = AttackObjectsTable
	MappingsTable.ForeignKeys[1].RefTable = ReportsTable
	MappingsTable.ForeignKeys[2].RefTable = SentencesTable
	MappingsTable.Annotation = &entsql.Annotation{
		Table: "mappings",
	}
	ReportsTable.ForeignKeys[0].RefTable = DocumentsTable
	ReportsTable.Annotation = &entsql.Annotation{
		Table: "reports",
	}
	SentencesTable.ForeignKeys[0].RefTable = DocumentsTable
	SentencesTable.ForeignKeys[1].RefTable = ReportsTable
	SentencesTable.Annotation = &entsql.Annotation{
		Table: "sentences",
	}
}
