package web

import "github.com/raglab/docqa"

// Bundle holds the localized interface strings for one language.
type Bundle struct {
	Title         string
	Intro         string
	QuestionLabel string
	AnswerLabel   string
	ContextLabel  string
	Placeholder   string
	Submit        string
	// Fallback is the canned answer shown when the pipeline fails.
	// The underlying error is logged, never shown to the user.
	Fallback string
}

var bundles = map[string]Bundle{
	docqa.LangEnglish: {
		Title:         "LightZero RAG Demo",
		Intro:         "Ask any question about LightZero below. The answer is generated from the reference document; the retrieved passages are highlighted in it.",
		QuestionLabel: "Question (Q)",
		AnswerLabel:   "Answer (A)",
		ContextLabel:  "Reference document with retrieved context highlighted (C)",
		Placeholder:   "Ask anything about LightZero.",
		Submit:        "Submit",
		Fallback:      "An error occurred while processing your question, please try again later.",
	},
	docqa.LangChinese: {
		Title:         "LightZero RAG Demo",
		Intro:         "请您在下面的输入框中输入任何关于 LightZero 的问题，提交后会显示模型给出的回答，参考文档中检索得到的相关文段会高亮显示。",
		QuestionLabel: "问题 (Q)",
		AnswerLabel:   "回答 (A)",
		ContextLabel:  "参考的文档，检索得到的 context 用高亮显示 (C)",
		Placeholder:   "请您输入任何关于 LightZero 的问题。",
		Submit:        "提交",
		Fallback:      "处理您的问题时出现错误，请稍后再试。",
	},
}

// BundleFor returns the text bundle for a language, falling back to English
// for unknown values. Language validity is enforced at config load, so the
// fallback only matters for direct callers.
func BundleFor(lang string) Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[docqa.LangEnglish]
}
