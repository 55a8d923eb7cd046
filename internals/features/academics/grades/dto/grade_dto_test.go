// file: internals/features/academics/grades/dto/grade_dto_test.go
package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gradeModel "academia_backend/internals/features/academics/grades/model"
	helper "academia_backend/internals/helpers"
)

func TestSubmitGradesRequestCoercion(t *testing.T) {
	payload := `{"grades":[
		{"type":"SPEAKING","progress_test":"80","class_performance":60},
		{"type":"READING","score":"55.5","comments":"steady"}
	]}`

	var req SubmitGradesRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Len(t, req.Grades, 2)

	assert.Equal(t, gradeModel.EvaluationSpeaking, req.Grades[0].Type)
	assert.Equal(t, 80.0, req.Grades[0].ProgressTest.Value)
	assert.Equal(t, 60.0, req.Grades[0].ClassPerformance.Value)
	assert.False(t, req.Grades[0].Score.Set)

	assert.Equal(t, 55.5, req.Grades[1].Score.Value)
}

func TestSubmitGradesRequestRejectsNonNumeric(t *testing.T) {
	payload := `{"grades":[{"type":"SPEAKING","progress_test":"ochenta"}]}`

	var req SubmitGradesRequest
	assert.Error(t, json.Unmarshal([]byte(payload), &req))
}

func TestValidateRanges(t *testing.T) {
	ok := SubmitGradesRequest{Grades: []GradeItemRequest{
		{Type: gradeModel.EvaluationSpeaking, Score: helper.FlexNumber{Value: 100, Set: true}},
		{Type: gradeModel.EvaluationReading},
	}}
	assert.NoError(t, ok.ValidateRanges())

	over := SubmitGradesRequest{Grades: []GradeItemRequest{
		{Type: gradeModel.EvaluationSpeaking, ProgressTest: helper.FlexNumber{Value: 101, Set: true}},
	}}
	err := over.ValidateRanges()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "progress_test")

	negative := SubmitGradesRequest{Grades: []GradeItemRequest{
		{Type: gradeModel.EvaluationWriting, Score: helper.FlexNumber{Value: -1, Set: true}},
	}}
	assert.Error(t, negative.ValidateRanges())
}
