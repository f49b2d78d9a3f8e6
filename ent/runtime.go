// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mightyhq/prepcore/ent/dailyplan"
	"github.com/mightyhq/prepcore/ent/learnerprofile"
	"github.com/mightyhq/prepcore/ent/llmrequestevent"
	"github.com/mightyhq/prepcore/ent/question"
	"github.com/mightyhq/prepcore/ent/schema"
	"github.com/mightyhq/prepcore/ent/stressrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dailyplanFields := schema.DailyPlan{}.Fields()
	_ = dailyplanFields
	// dailyplanDescPlanID is the schema descriptor for plan_id field.
	dailyplanDescPlanID := dailyplanFields[0].Descriptor()
	// dailyplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	dailyplan.PlanIDValidator = dailyplanDescPlanID.Validators[0].(func(string) error)
	// dailyplanDescUserID is the schema descriptor for user_id field.
	dailyplanDescUserID := dailyplanFields[1].Descriptor()
	// dailyplan.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	dailyplan.UserIDValidator = dailyplanDescUserID.Validators[0].(func(string) error)
	// dailyplanDescPlanDate is the schema descriptor for plan_date field.
	dailyplanDescPlanDate := dailyplanFields[2].Descriptor()
	// dailyplan.PlanDateValidator is a validator for the "plan_date" field. It is called by the builders before save.
	dailyplan.PlanDateValidator = dailyplanDescPlanDate.Validators[0].(func(string) error)
	// dailyplanDescCompleted is the schema descriptor for completed field.
	dailyplanDescCompleted := dailyplanFields[4].Descriptor()
	// dailyplan.DefaultCompleted holds the default value on creation for the completed field.
	dailyplan.DefaultCompleted = dailyplanDescCompleted.Default.(bool)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learnerprofileFields := schema.LearnerProfile{}.Fields()
	_ = learnerprofileFields
	// learnerprofileDescUserID is the schema descriptor for user_id field.
	learnerprofileDescUserID := learnerprofileFields[0].Descriptor()
	// learnerprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learnerprofile.UserIDValidator = learnerprofileDescUserID.Validators[0].(func(string) error)
	// learnerprofileDescDailyMinutes is the schema descriptor for daily_minutes field.
	learnerprofileDescDailyMinutes := learnerprofileFields[3].Descriptor()
	// learnerprofile.DefaultDailyMinutes holds the default value on creation for the daily_minutes field.
	learnerprofile.DefaultDailyMinutes = learnerprofileDescDailyMinutes.Default.(int)
	// learnerprofileDescScoreLow is the schema descriptor for score_low field.
	learnerprofileDescScoreLow := learnerprofileFields[4].Descriptor()
	// learnerprofile.DefaultScoreLow holds the default value on creation for the score_low field.
	learnerprofile.DefaultScoreLow = learnerprofileDescScoreLow.Default.(int)
	// learnerprofileDescScoreHigh is the schema descriptor for score_high field.
	learnerprofileDescScoreHigh := learnerprofileFields[5].Descriptor()
	// learnerprofile.DefaultScoreHigh holds the default value on creation for the score_high field.
	learnerprofile.DefaultScoreHigh = learnerprofileDescScoreHigh.Default.(int)
	// learnerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	learnerprofileDescUpdatedAt := learnerprofileFields[6].Descriptor()
	// learnerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnerprofile.DefaultUpdatedAt = learnerprofileDescUpdatedAt.Default.(func() time.Time)
	// learnerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnerprofile.UpdateDefaultUpdatedAt = learnerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQid is the schema descriptor for qid field.
	questionDescQid := questionFields[0].Descriptor()
	// question.QidValidator is a validator for the "qid" field. It is called by the builders before save.
	question.QidValidator = questionDescQid.Validators[0].(func(string) error)
	// questionDescDomain is the schema descriptor for domain field.
	questionDescDomain := questionFields[1].Descriptor()
	// question.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	question.DomainValidator = questionDescDomain.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[2].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[3].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[5].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[6].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescActive is the schema descriptor for active field.
	questionDescActive := questionFields[7].Descriptor()
	// question.DefaultActive holds the default value on creation for the active field.
	question.DefaultActive = questionDescActive.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[8].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	stressrecordFields := schema.StressRecord{}.Fields()
	_ = stressrecordFields
	// stressrecordDescUserID is the schema descriptor for user_id field.
	stressrecordDescUserID := stressrecordFields[0].Descriptor()
	// stressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	stressrecord.UserIDValidator = stressrecordDescUserID.Validators[0].(func(string) error)
	// stressrecordDescSubjectID is the schema descriptor for subject_id field.
	stressrecordDescSubjectID := stressrecordFields[1].Descriptor()
	// stressrecord.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	stressrecord.SubjectIDValidator = stressrecordDescSubjectID.Validators[0].(func(string) error)
	// stressrecordDescTopicID is the schema descriptor for topic_id field.
	stressrecordDescTopicID := stressrecordFields[2].Descriptor()
	// stressrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	stressrecord.TopicIDValidator = stressrecordDescTopicID.Validators[0].(func(string) error)
	// stressrecordDescLevel is the schema descriptor for level field.
	stressrecordDescLevel := stressrecordFields[3].Descriptor()
	// stressrecord.DefaultLevel holds the default value on creation for the level field.
	stressrecord.DefaultLevel = stressrecordDescLevel.Default.(float64)
	// stressrecordDescLastUpdated is the schema descriptor for last_updated field.
	stressrecordDescLastUpdated := stressrecordFields[4].Descriptor()
	// stressrecord.DefaultLastUpdated holds the default value on creation for the last_updated field.
	stressrecord.DefaultLastUpdated = stressrecordDescLastUpdated.Default.(func() time.Time)
}
