package kerml

import "github.com/sysml-tools/semcore/adapter"

// kinds is the kerml dialect's raw-grammar-production kind table: the
// classifier variants (generic classifier plus the structural/behavioral
// specializations the kernel language distinguishes) and the single
// Feature production, a typed member of a classifier.
var kinds = adapter.Merge(map[string]adapter.KindSpec{
	"Classifier":  {Category: adapter.CategoryClassifier, NormalizedKind: "classifier"},
	"Structure":   {Category: adapter.CategoryClassifier, NormalizedKind: "structure"},
	"DataType":    {Category: adapter.CategoryClassifier, NormalizedKind: "datatype"},
	"Association": {Category: adapter.CategoryClassifier, NormalizedKind: "association"},
	"Behavior":    {Category: adapter.CategoryClassifier, NormalizedKind: "behavior"},
	"Interaction": {Category: adapter.CategoryClassifier, NormalizedKind: "interaction"},
	"Metaclass":   {Category: adapter.CategoryClassifier, NormalizedKind: "metaclass"},
	"Feature":     {Category: adapter.CategoryFeature},
})
