package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerHelpQuestionMatchesTopic(t *testing.T) {
	got := answerHelpQuestion("日次報告の入力方法を教えて")
	assert.Equal(t, "happy", got.Mood)
	assert.Contains(t, got.Answer, "日報入力")
	assert.NotEmpty(t, got.FollowUps)
}

func TestAnswerHelpQuestionFirstMatchWins(t *testing.T) {
	// Mentions both reports and stores; the report topic is listed first.
	got := answerHelpQuestion("店舗の日次報告について")
	assert.Equal(t, "happy", got.Mood)
}

func TestAnswerHelpQuestionFallback(t *testing.T) {
	got := answerHelpQuestion("今日の天気は？")
	assert.Equal(t, assistantFallback, got)
	assert.Equal(t, "sorry", got.Mood)
}
