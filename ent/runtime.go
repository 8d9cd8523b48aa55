// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/PTMAbellana/Polegion-sub002/ent/geometryquestion"
	"github.com/PTMAbellana/Polegion-sub002/ent/llmrequestevent"
	"github.com/PTMAbellana/Polegion-sub002/ent/schema"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
	"github.com/PTMAbellana/Polegion-sub002/ent/transitionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	geometryquestionFields := schema.GeometryQuestion{}.Fields()
	_ = geometryquestionFields
	// geometryquestionDescQuestionID is the schema descriptor for question_id field.
	geometryquestionDescQuestionID := geometryquestionFields[0].Descriptor()
	// geometryquestion.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	geometryquestion.QuestionIDValidator = geometryquestionDescQuestionID.Validators[0].(func(string) error)
	// geometryquestionDescChapterID is the schema descriptor for chapter_id field.
	geometryquestionDescChapterID := geometryquestionFields[1].Descriptor()
	// geometryquestion.ChapterIDValidator is a validator for the "chapter_id" field. It is called by the builders before save.
	geometryquestion.ChapterIDValidator = geometryquestionDescChapterID.Validators[0].(func(string) error)
	// geometryquestionDescTopic is the schema descriptor for topic field.
	geometryquestionDescTopic := geometryquestionFields[2].Descriptor()
	// geometryquestion.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	geometryquestion.TopicValidator = geometryquestionDescTopic.Validators[0].(func(string) error)
	// geometryquestionDescDifficulty is the schema descriptor for difficulty field.
	geometryquestionDescDifficulty := geometryquestionFields[3].Descriptor()
	// geometryquestion.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	geometryquestion.DifficultyValidator = func() func(int) error {
		validators := geometryquestionDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// geometryquestionDescText is the schema descriptor for text field.
	geometryquestionDescText := geometryquestionFields[4].Descriptor()
	// geometryquestion.TextValidator is a validator for the "text" field. It is called by the builders before save.
	geometryquestion.TextValidator = geometryquestionDescText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	studentdifficultyFields := schema.StudentDifficulty{}.Fields()
	_ = studentdifficultyFields
	// studentdifficultyDescStudentID is the schema descriptor for student_id field.
	studentdifficultyDescStudentID := studentdifficultyFields[0].Descriptor()
	// studentdifficulty.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	studentdifficulty.StudentIDValidator = studentdifficultyDescStudentID.Validators[0].(func(string) error)
	// studentdifficultyDescChapterID is the schema descriptor for chapter_id field.
	studentdifficultyDescChapterID := studentdifficultyFields[1].Descriptor()
	// studentdifficulty.ChapterIDValidator is a validator for the "chapter_id" field. It is called by the builders before save.
	studentdifficulty.ChapterIDValidator = studentdifficultyDescChapterID.Validators[0].(func(string) error)
	// studentdifficultyDescDifficultyLevel is the schema descriptor for difficulty_level field.
	studentdifficultyDescDifficultyLevel := studentdifficultyFields[2].Descriptor()
	// studentdifficulty.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	studentdifficulty.DefaultDifficultyLevel = studentdifficultyDescDifficultyLevel.Default.(int)
	// studentdifficulty.DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	studentdifficulty.DifficultyLevelValidator = func() func(int) error {
		validators := studentdifficultyDescDifficultyLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty_level int) error {
			for _, fn := range fns {
				if err := fn(difficulty_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studentdifficultyDescMasteryLevel is the schema descriptor for mastery_level field.
	studentdifficultyDescMasteryLevel := studentdifficultyFields[3].Descriptor()
	// studentdifficulty.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	studentdifficulty.DefaultMasteryLevel = studentdifficultyDescMasteryLevel.Default.(float64)
	// studentdifficulty.MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	studentdifficulty.MasteryLevelValidator = func() func(float64) error {
		validators := studentdifficultyDescMasteryLevel.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(mastery_level float64) error {
			for _, fn := range fns {
				if err := fn(mastery_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studentdifficultyDescCorrectStreak is the schema descriptor for correct_streak field.
	studentdifficultyDescCorrectStreak := studentdifficultyFields[4].Descriptor()
	// studentdifficulty.DefaultCorrectStreak holds the default value on creation for the correct_streak field.
	studentdifficulty.DefaultCorrectStreak = studentdifficultyDescCorrectStreak.Default.(int)
	// studentdifficulty.CorrectStreakValidator is a validator for the "correct_streak" field. It is called by the builders before save.
	studentdifficulty.CorrectStreakValidator = studentdifficultyDescCorrectStreak.Validators[0].(func(int) error)
	// studentdifficultyDescWrongStreak is the schema descriptor for wrong_streak field.
	studentdifficultyDescWrongStreak := studentdifficultyFields[5].Descriptor()
	// studentdifficulty.DefaultWrongStreak holds the default value on creation for the wrong_streak field.
	studentdifficulty.DefaultWrongStreak = studentdifficultyDescWrongStreak.Default.(int)
	// studentdifficulty.WrongStreakValidator is a validator for the "wrong_streak" field. It is called by the builders before save.
	studentdifficulty.WrongStreakValidator = studentdifficultyDescWrongStreak.Validators[0].(func(int) error)
	// studentdifficultyDescTotalAttempts is the schema descriptor for total_attempts field.
	studentdifficultyDescTotalAttempts := studentdifficultyFields[6].Descriptor()
	// studentdifficulty.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	studentdifficulty.DefaultTotalAttempts = studentdifficultyDescTotalAttempts.Default.(int)
	// studentdifficulty.TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	studentdifficulty.TotalAttemptsValidator = studentdifficultyDescTotalAttempts.Validators[0].(func(int) error)
	// studentdifficultyDescCorrectAnswers is the schema descriptor for correct_answers field.
	studentdifficultyDescCorrectAnswers := studentdifficultyFields[7].Descriptor()
	// studentdifficulty.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	studentdifficulty.DefaultCorrectAnswers = studentdifficultyDescCorrectAnswers.Default.(int)
	// studentdifficulty.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	studentdifficulty.CorrectAnswersValidator = studentdifficultyDescCorrectAnswers.Validators[0].(func(int) error)
	transitioneventMixin := schema.TransitionEvent{}.Mixin()
	transitioneventMixinFields0 := transitioneventMixin[0].Fields()
	_ = transitioneventMixinFields0
	transitioneventFields := schema.TransitionEvent{}.Fields()
	_ = transitioneventFields
	// transitioneventDescTimestamp is the schema descriptor for timestamp field.
	transitioneventDescTimestamp := transitioneventMixinFields0[1].Descriptor()
	// transitionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	transitionevent.DefaultTimestamp = transitioneventDescTimestamp.Default.(func() time.Time)
	// transitioneventDescStudentID is the schema descriptor for student_id field.
	transitioneventDescStudentID := transitioneventFields[1].Descriptor()
	// transitionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	transitionevent.StudentIDValidator = transitioneventDescStudentID.Validators[0].(func(string) error)
	// transitioneventDescChapterID is the schema descriptor for chapter_id field.
	transitioneventDescChapterID := transitioneventFields[2].Descriptor()
	// transitionevent.ChapterIDValidator is a validator for the "chapter_id" field. It is called by the builders before save.
	transitionevent.ChapterIDValidator = transitioneventDescChapterID.Validators[0].(func(string) error)
	// transitioneventDescAction is the schema descriptor for action field.
	transitioneventDescAction := transitioneventFields[8].Descriptor()
	// transitionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	transitionevent.ActionValidator = transitioneventDescAction.Validators[0].(func(string) error)
	// transitioneventDescReason is the schema descriptor for reason field.
	transitioneventDescReason := transitioneventFields[9].Descriptor()
	// transitionevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	transitionevent.ReasonValidator = transitioneventDescReason.Validators[0].(func(string) error)
}
