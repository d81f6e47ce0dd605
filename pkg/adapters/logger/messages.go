package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":                                          "パイプラインを開始します",
		"Pipeline completed successfully":                            "パイプラインが正常に完了しました",
		"Output saved to %s":                                         "出力を %s に保存しました",
		"Interrupted, shutting down...":                              "中断されました。シャットダウン中...",
		"No frames requested, the container will only hold a header": "フレームが指定されていないため、ヘッダーのみのコンテナになります",
		"Removed previous output %s":                                 "以前の出力 %s を削除しました",

		// Convert stage
		"Converting %d frames": "%d フレームを変換中",
		"Converted %d frames":  "%d フレームを変換しました",

		// Extract stage
		"Reading %d frames from %s": "%d フレームを %s から読み込み中",
		"Resolution: %dx%d":         "解像度: %dx%d",

		// Encode stage
		"Encoding %d frames": "%d フレームをエンコード中",

		// Cleanup
		"Removed %d artifacts": "%d 個の中間ファイルを削除しました",

		// Inspect
		"Inspecting %s":                              "%s を検査中",
		"Container: %dx%d, %d frames, %d bytes":      "コンテナ: %dx%d, %d フレーム, %d バイト",
		"Contact sheet saved to %s":                  "コンタクトシートを %s に保存しました",
		"Nothing to preview, skipping contact sheet": "プレビューするフレームがないため、コンタクトシートを省略します",

		// Summary
		"Summary saved to %s": "サマリーを %s に保存しました",

		// Warnings
		"Failed to save debug output: %s":        "デバッグ出力の保存に失敗しました: %s",
		"Failed to save preview of frame %d: %s": "フレーム %d のプレビュー保存に失敗しました: %s",
		"Failed to remove temporary file %s: %s": "一時ファイル %s の削除に失敗しました: %s",
		"Failed to remove artifact %s: %s":       "中間ファイル %s の削除に失敗しました: %s",

		// Errors
		"Failed to convert frames: %s":         "フレームの変換に失敗しました: %s",
		"Failed to read frames: %s":            "フレームの読み込みに失敗しました: %s",
		"Failed to encode container: %s":       "コンテナのエンコードに失敗しました: %s",
		"Failed to inspect container: %s":      "コンテナの検査に失敗しました: %s",
		"Failed to write summary: %s":          "サマリーの書き込みに失敗しました: %s",
		"Failed to remove previous output: %s": "以前の出力の削除に失敗しました: %s",
	})
}
