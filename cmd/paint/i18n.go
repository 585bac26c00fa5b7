// Package main provides localization for the rasterpaint CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Logging":       "ログ",
		"Debug":         "デバッグ",

		// Root command
		"Headless raster paint engine": "ヘッドレスのラスターペイントエンジン",
		"Error: %s":                    "エラー: %s",

		// Global flags
		"Configuration file (YAML or TOML)":                "設定ファイル（YAML または TOML）",
		"Settings file remembering tool, brush and colors": "ツール・ブラシ・色を記憶する設定ファイル",
		"Do not read or write the settings file":           "設定ファイルを読み書きしない",
		"Log level (debug, info, warn, error)":             "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                          "すべてのログ出力を抑制",
		"Write every history snapshot as PNG":              "履歴スナップショットをすべてPNGで書き出す",
		"Directory for debug output":                       "デバッグ出力先ディレクトリ",

		// Run command
		"Replay a gesture script and save the result":   "ジェスチャースクリプトを再生して結果を保存",
		"Output image path (.png, .jpg, .bmp, .pdf)":    "出力画像パス（.png, .jpg, .bmp, .pdf）",
		"Write a session summary to this path (.md or .yaml)": "セッション概要をこのパスに書き出す (.md または .yaml)",
		"run needs exactly one SCRIPT argument":         "run には SCRIPT 引数がちょうど1つ必要です",

		// Filter command
		"Apply one filter to an image file": "画像ファイルにフィルターを1つ適用",
		"Filter name (blur, sharpen, grayscale, invert, brightness, contrast)": "フィルター名（blur, sharpen, grayscale, invert, brightness, contrast）",
		"Brightness or contrast factor (0.0-2.0)":  "明るさまたはコントラストの係数（0.0-2.0）",
		"filter needs exactly one INPUT argument": "filter には INPUT 引数がちょうど1つ必要です",

		// Blank command
		"Write a blank canvas":               "空のキャンバスを書き出す",
		"Canvas width (default from config)":  "キャンバスの幅（既定値は設定ファイル）",
		"Canvas height (default from config)": "キャンバスの高さ（既定値は設定ファイル）",
		"Background color (hex or name)":      "背景色（16進または色名）",

		// Version command
		"Show version information": "バージョン情報を表示",
		"rasterpaint version %s":   "rasterpaint バージョン %s",

		// Summary report
		"Paint Session Summary":    "ペイントセッション概要",
		"Generated":                "生成日時",
		"Session":                  "セッション",
		"Item":                     "項目",
		"Value":                    "値",
		"Script":                   "スクリプト",
		"Steps":                    "ステップ数",
		"Failed Steps":             "失敗したステップ",
		"Duration":                 "所要時間",
		"Actions":                  "操作",
		"Action":                   "操作",
		"Count":                    "回数",
		"Canvas":                   "キャンバス",
		"Size":                     "サイズ",
		"Revision":                 "リビジョン",
		"Snapshots":                "スナップショット数",
		"Undo Available":           "元に戻す可能",
		"Redo Available":           "やり直し可能",
		"Tools":                    "ツール",
		"Tool":                     "ツール",
		"Brush Size":               "ブラシサイズ",
		"Primary Color":            "主色",
		"Secondary Color":          "副色",
		"Output":                   "出力",
		"File":                     "ファイル",
		"Format":                   "形式",
		"File Size":                "ファイルサイズ",
		"Errors":                   "エラー",
		"Yes":                      "はい",
		"No":                       "いいえ",
		"Generated by rasterpaint": "rasterpaint により生成",
	})
}
