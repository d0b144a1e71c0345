package handlers

import (
	"strings"

	"app/models"

	"github.com/gofiber/fiber/v2"
)

// helpTopics is the avatar assistant's static FAQ. Evaluated top to
// bottom, first keyword match wins, same dispatch style as the
// analytics intent table.
var helpTopics = []struct {
	keywords  []string
	answer    string
	mood      string
	followUps []string
}{
	{
		keywords: []string{"日次報告", "日報", "入力", "report"},
		answer:   "日次報告はホーム画面の「日報入力」から登録できます。売上と8つの経費項目を入力して保存してください。同じ日に再登録すると上書きされます。",
		mood:     "happy",
		followUps: []string{
			"経費項目にはどんな種類がありますか？",
			"過去の日報を修正できますか？",
		},
	},
	{
		keywords: []string{"店舗", "登録", "store"},
		answer:   "店舗の追加・編集は管理者アカウントの「店舗管理」から行えます。店舗を無効化しても過去の日報は残ります。",
		mood:     "normal",
		followUps: []string{
			"店長アカウントの作り方は？",
			"休業日の登録方法は？",
		},
	},
	{
		keywords: []string{"休業", "祝日", "holiday"},
		answer:   "休業日は「休業日管理」から登録できます。店舗を指定しなければ全店共通の休業日になります。",
		mood:     "normal",
		followUps: []string{
			"日次報告の入力方法を教えて",
			"このアシスタントでできることは？",
		},
	},
	{
		keywords: []string{"分析", "チャット", "できること", "使い方", "help"},
		answer:   "分析チャットでは「業績サマリー」「店舗比較」「売上予測」「改善アドバイス」「目標の進捗」「経費の内訳」について質問できます。気軽に話しかけてください！",
		mood:     "excited",
		followUps: []string{
			"今月の業績サマリーを見せて",
			"来月の売上予測は？",
		},
	},
}

// assistantFallback answers anything the topic table misses.
var assistantFallback = models.AssistantResponse{
	Answer: "すみません、その質問にはまだお答えできません。日次報告の入力、店舗や休業日の管理、分析チャットの使い方についてお手伝いできます。",
	Mood:   "sorry",
	FollowUps: []string{
		"日次報告の入力方法を教えて",
		"このアシスタントでできることは？",
	},
}

// answerHelpQuestion resolves a question against the topic table.
func answerHelpQuestion(question string) models.AssistantResponse {
	q := strings.ToLower(question)
	for _, topic := range helpTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(q, kw) {
				return models.AssistantResponse{
					Answer:    topic.answer,
					Mood:      topic.mood,
					FollowUps: topic.followUps,
				}
			}
		}
	}
	return assistantFallback
}

// HandleAssistantAsk answers a help question for the avatar assistant.
// POST /api/v1/assistant/ask
func HandleAssistantAsk(c *fiber.Ctx) error {
	var req models.AssistantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "question is required"})
	}

	return c.JSON(fiber.Map{"success": true, "data": answerHelpQuestion(req.Question)})
}
