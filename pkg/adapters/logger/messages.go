package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session level messages (info)
		"Replaying %s (%d steps)":       "%s を再生中 (%d ステップ)",
		"Output saved to %s":            "出力を %s に保存しました",
		"Summary saved to %s":           "概要を %s に保存しました",
		"Applying %s to %s":             "%[2]s に %[1]s を適用中",
		"Writing snapshots to %s":       "スナップショットを %s に書き出します",
		"Interrupted, shutting down...": "中断されました。終了中...",
		"Loaded config from %s":         "%s から設定を読み込みました",
		"Restored settings from %s":     "%s から前回の設定を復元しました",

		// Canvas component (debug)
		"Recorded snapshot %d (%s)":      "スナップショット %d を記録 (%s)",
		"Discarded gesture in progress":  "進行中のジェスチャーを破棄しました",
		"Undo, %d entries left":          "元に戻す: 残り %d 件",
		"Redo, %d entries left":          "やり直し: 残り %d 件",
		"Filled %d pixels at (%d,%d)":    "(%[2]d,%[3]d) から %[1]d ピクセルを塗りつぶしました",
		"Resized to %dx%d":               "%dx%d に拡張しました",
		"Saved %s (%s, %d bytes)":        "%s を保存しました (%s, %d バイト)",
		"Opened %s (%s, %dx%d)":          "%s を開きました (%s, %dx%d)",
		"Filter %s cancelled":            "フィルター %s はキャンセルされました",

		// Script component
		"Step %d: %s":          "ステップ %d: %s",
		"Nothing left to undo": "元に戻す履歴がありません",
		"Nothing left to redo": "やり直す履歴がありません",

		// Warnings
		"Step %d (%s) failed: %s":      "ステップ %d (%s) が失敗しました: %s",
		"%d of %d steps failed":        "%[2]d ステップ中 %[1]d ステップが失敗しました",
		"Failed to save snapshot %d: %s": "スナップショット %d の保存に失敗しました: %s",
		"Failed to read settings: %s":  "設定の読み込みに失敗しました: %s",
		"Failed to write settings: %s": "設定の書き込みに失敗しました: %s",
		"Some settings were ignored: %s": "一部の設定は無視されました: %s",
		"Settings disabled: %s":        "設定ファイルは無効です: %s",
		"Failed to write summary: %s":  "概要の書き込みに失敗しました: %s",

		// Errors
		"Failed to load script: %s":   "スクリプトの読み込みに失敗しました: %s",
		"Script stopped: %s":          "スクリプトが停止しました: %s",
		"Failed to save %s: %s":       "%s の保存に失敗しました: %s",
		"Failed to apply filter: %s":  "フィルターの適用に失敗しました: %s",
	})
}
