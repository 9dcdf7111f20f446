// Package validate classifies parsed records against the target table.
//
// Classification combines two independent checks per record: field values
// against the schema's character-length limits, and an equality probe for
// an identical row already persisted in the target table. The validation
// pass and the loader share one Classifier, so a record's reported errors
// and its exclusion from loading can never disagree.
package validate
