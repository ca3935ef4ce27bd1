package dataset

// InputError represents an error on the data a tree is asked to learn from
type InputError string

const (
	// ErrMissingAttribute is returned when an attribute is not a column of
	// the dataset.
	ErrMissingAttribute = InputError("attribute not present in dataset")
	// ErrColumnLength is returned when the columns of a dataset differ in length.
	ErrColumnLength = InputError("dataset columns have different lengths")
	// ErrEmptyDataset is returned when trying to learn from a dataset without rows.
	ErrEmptyDataset = InputError("dataset has no rows")
)

func (ie InputError) Error() string {
	return string(ie)
}
