package tree

import (
	"github.com/pbanos/id3/dataset"
)

/*
Test takes a tree, a dataset, the name of the label attribute and whether to
use lenient matching, and returns two values:
  - the prediction success rate of the tree over the rows of the dataset
  - the number of rows the tree could not classify

It returns an error if the dataset is not valid or lacks the label attribute.
Rows that cannot be classified count as failures for the success rate.
*/
func Test(t Tree, d dataset.Dataset, label string, lenient bool) (float64, int, error) {
	err := d.Validate(label)
	if err != nil {
		return 0.0, 0, err
	}
	count := d.Len()
	if count == 0 {
		return 0.0, 0, nil
	}
	predict := Predict
	if lenient {
		predict = PredictLenient
	}
	var result float64
	var errCount int
	for i := 0; i < count; i++ {
		row := d.Row(i)
		expected := row[label]
		delete(row, label)
		p, ok := predict(t, Query(row))
		if !ok {
			errCount++
			continue
		}
		if p == expected {
			result += 1.0
		}
	}
	return result / float64(count), errCount, nil
}
