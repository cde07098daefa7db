// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/db/ent/schema"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/document"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/indicator"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/ingestjob"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attackobjectFields := schema.AttackObject{}.Fields()
	_ = attackobjectFields
	// attackobjectDescKind is the schema descriptor for kind field.
	attackobjectDescKind := attackobjectFields[1].Descriptor()
	// attackobject.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attackobject.KindValidator = func() func(string) error {
		validators := attackobjectDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attackobjectDescName is the schema descriptor for name field.
	attackobjectDescName := attackobjectFields[2].Descriptor()
	// attackobject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	attackobject.NameValidator = attackobjectDescName.Validators[0].(func(string) error)
	// attackobjectDescStixID is the schema descriptor for stix_id field.
	attackobjectDescStixID := attackobjectFields[3].Descriptor()
	// attackobject.StixIDValidator is a validator for the "stix_id" field. It is called by the builders before save.
	attackobject.StixIDValidator = attackobjectDescStixID.Validators[0].(func(string) error)
	// attackobjectDescAttackID is the schema descriptor for attack_id field.
	attackobjectDescAttackID := attackobjectFields[4].Descriptor()
	// attackobject.AttackIDValidator is a validator for the "attack_id" field. It is called by the builders before save.
	attackobject.AttackIDValidator = attackobjectDescAttackID.Validators[0].(func(string) error)
	// attackobjectDescMatrix is the schema descriptor for matrix field.
	attackobjectDescMatrix := attackobjectFields[6].Descriptor()
	// attackobject.MatrixValidator is a validator for the "matrix" field. It is called by the builders before save.
	attackobject.MatrixValidator = attackobjectDescMatrix.Validators[0].(func(string) error)
	// attackobjectDescCreatedAt is the schema descriptor for created_at field.
	attackobjectDescCreatedAt := attackobjectFields[7].Descriptor()
	// attackobject.DefaultCreatedAt holds the default value on creation for the created_at field.
	attackobject.DefaultCreatedAt = attackobjectDescCreatedAt.Default.(func() time.Time)
	// attackobjectDescUpdatedAt is the schema descriptor for updated_at field.
	attackobjectDescUpdatedAt := attackobjectFields[8].Descriptor()
	// attackobject.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attackobject.DefaultUpdatedAt = attackobjectDescUpdatedAt.Default.(func() time.Time)
	// attackobject.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attackobject.UpdateDefaultUpdatedAt = attackobjectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// attackobjectDescID is the schema descriptor for id field.
	attackobjectDescID := attackobjectFields[0].Descriptor()
	// attackobject.DefaultID holds the default value on creation for the id field.
	attackobject.DefaultID = attackobjectDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[2].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[4].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[5].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	indicatorFields := schema.Indicator{}.Fields()
	_ = indicatorFields
	// indicatorDescIndicatorType is the schema descriptor for indicator_type field.
	indicatorDescIndicatorType := indicatorFields[2].Descriptor()
	// indicator.IndicatorTypeValidator is a validator for the "indicator_type" field. It is called by the builders before save.
	indicator.IndicatorTypeValidator = indicatorDescIndicatorType.Validators[0].(func(string) error)
	// indicatorDescValue is the schema descriptor for value field.
	indicatorDescValue := indicatorFields[3].Descriptor()
	// indicator.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	indicator.ValueValidator = indicatorDescValue.Validators[0].(func(string) error)
	// indicatorDescCreatedAt is the schema descriptor for created_at field.
	indicatorDescCreatedAt := indicatorFields[4].Descriptor()
	// indicator.DefaultCreatedAt holds the default value on creation for the created_at field.
	indicator.DefaultCreatedAt = indicatorDescCreatedAt.Default.(func() time.Time)
	// indicatorDescUpdatedAt is the schema descriptor for updated_at field.
	indicatorDescUpdatedAt := indicatorFields[5].Descriptor()
	// indicator.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	indicator.DefaultUpdatedAt = indicatorDescUpdatedAt.Default.(func() time.Time)
	// indicator.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	indicator.UpdateDefaultUpdatedAt = indicatorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// indicatorDescID is the schema descriptor for id field.
	indicatorDescID := indicatorFields[0].Descriptor()
	// indicator.DefaultID holds the default value on creation for the id field.
	indicator.DefaultID = indicatorDescID.Default.(func() uuid.UUID)
	ingestjobFields := schema.IngestJob{}.Fields()
	_ = ingestjobFields
	// ingestjobDescStatus is the schema descriptor for status field.
	ingestjobDescStatus := ingestjobFields[2].Descriptor()
	// ingestjob.DefaultStatus holds the default value on creation for the status field.
	ingestjob.DefaultStatus = ingestjobDescStatus.Default.(string)
	// ingestjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ingestjob.StatusValidator = ingestjobDescStatus.Validators[0].(func(string) error)
	// ingestjobDescMessage is the schema descriptor for message field.
	ingestjobDescMessage := ingestjobFields[3].Descriptor()
	// ingestjob.DefaultMessage holds the default value on creation for the message field.
	ingestjob.DefaultMessage = ingestjobDescMessage.Default.(string)
	// ingestjob.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	ingestjob.MessageValidator = ingestjobDescMessage.Validators[0].(func(string) error)
	// ingestjobDescCreatedAt is the schema descriptor for created_at field.
	ingestjobDescCreatedAt := ingestjobFields[5].Descriptor()
	// ingestjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingestjob.DefaultCreatedAt = ingestjobDescCreatedAt.Default.(func() time.Time)
	// ingestjobDescUpdatedAt is the schema descriptor for updated_at field.
	ingestjobDescUpdatedAt := ingestjobFields[6].Descriptor()
	// ingestjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ingestjob.DefaultUpdatedAt = ingestjobDescUpdatedAt.Default.(func() time.Time)
	// ingestjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ingestjob.UpdateDefaultUpdatedAt = ingestjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ingestjobDescID is the schema descriptor for id field.
	ingestjobDescID := ingestjobFields[0].Descriptor()
	// ingestjob.DefaultID holds the default value on creation for the id field.
	ingestjob.DefaultID = ingestjobDescID.Default.(func() uuid.UUID)
	mappingFields := schema.Mapping{}.Fields()
	_ = mappingFields
	// mappingDescCreatedAt is the schema descriptor for created_at field.
	mappingDescCreatedAt := mappingFields[6].Descriptor()
	// mapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	mapping.DefaultCreatedAt = mappingDescCreatedAt.Default.(func() time.Time)
	// mappingDescUpdatedAt is the schema descriptor for updated_at field.
	mappingDescUpdatedAt := mappingFields[7].Descriptor()
	// mapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mapping.DefaultUpdatedAt = mappingDescUpdatedAt.Default.(func() time.Time)
	// mapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mapping.UpdateDefaultUpdatedAt = mappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mappingDescID is the schema descriptor for id field.
	mappingDescID := mappingFields[0].Descriptor()
	// mapping.DefaultID holds the default value on creation for the id field.
	mapping.DefaultID = mappingDescID.Default.(func() uuid.UUID)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescName is the schema descriptor for name field.
	reportDescName := reportFields[1].Descriptor()
	// report.NameValidator is a validator for the "name" field. It is called by the builders before save.
	report.NameValidator = reportDescName.Validators[0].(func(string) error)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[5].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportFields[6].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	sentenceFields := schema.Sentence{}.Fields()
	_ = sentenceFields
	// sentenceDescOrder is the schema descriptor for order field.
	sentenceDescOrder := sentenceFields[4].Descriptor()
	// sentence.DefaultOrder holds the default value on creation for the order field.
	sentence.DefaultOrder = sentenceDescOrder.Default.(int)
	// sentenceDescDisposition is the schema descriptor for disposition field.
	sentenceDescDisposition := sentenceFields[5].Descriptor()
	// sentence.DispositionValidator is a validator for the "disposition" field. It is called by the builders before save.
	sentence.DispositionValidator = sentenceDescDisposition.Validators[0].(func(string) error)
	// sentenceDescCreatedAt is the schema descriptor for created_at field.
	sentenceDescCreatedAt := sentenceFields[6].Descriptor()
	// sentence.DefaultCreatedAt holds the default value on creation for the created_at field.
	sentence.DefaultCreatedAt = sentenceDescCreatedAt.Default.(func() time.Time)
	// sentenceDescUpdatedAt is the schema descriptor for updated_at field.
	sentenceDescUpdatedAt := sentenceFields[7].Descriptor()
	// sentence.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sentence.DefaultUpdatedAt = sentenceDescUpdatedAt.Default.(func() time.Time)
	// sentence.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sentence.UpdateDefaultUpdatedAt = sentenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sentenceDescID is the schema descriptor for id field.
	sentenceDescID := sentenceFields[0].Descriptor()
	// sentence.DefaultID holds the default value on creation for the id field.
	sentence.DefaultID = sentenceDescID.Default.(func() uuid.UUID)
}
