// Package main provides localization for the vidbin CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":      "入力",
		"Output":     "出力先",
		"Conversion": "変換",
		"Preview":    "プレビュー",
		"Debug":      "デバッグ",
		"Logging":    "ログ",

		// Root command
		"Pack RGB565 frames into a video binary for embedded displays":                                                                                "RGB565フレームを組み込みディスプレイ用の動画バイナリにまとめる",
		"vidbin reads per-frame C array artifacts, validates them and writes a single binary container that display firmware streams frame by frame.": "vidbinはフレームごとのC配列ファイルを読み込んで検証し、ディスプレイのファームウェアがフレーム単位で再生する単一のバイナリコンテナを書き出します。",

		// Build command
		"Build a video container from frame artifacts":                                                                      "フレームの中間ファイルから動画コンテナを作成",
		"Read frames 1..n from the artifact directory, optionally converting source images first, and write the container.": "中間ファイルのディレクトリからフレーム 1..n を読み込み（必要に応じて元画像を先に変換し）、コンテナを書き出します。",

		// Inspect command
		"Verify a video container and preview its frames":                                          "動画コンテナを検証し、フレームをプレビュー",
		"Decode every frame of a container, check its size and optionally render a contact sheet.": "コンテナの全フレームをデコードしてサイズを確認し、必要に応じてコンタクトシートを描画します。",
		"A container path is required":                                                             "コンテナのパスが必要です",

		// Version command
		"Show version information": "バージョン情報を表示",
		"vidbin version %s":        "vidbin バージョン %s",

		// Input flags
		"YAML configuration file":                                   "YAML設定ファイル",
		"Number of frames, named 1..n":                              "フレーム数（1..n の名前）",
		"Directory holding <index>.c artifacts (default: ./output)": "<index>.c 中間ファイルのディレクトリ（デフォルト: ./output）",
		"Frame width (default: 128)":                                "フレームの幅（デフォルト: 128）",
		"Frame height (default: 160)":                               "フレームの高さ（デフォルト: 160）",
		"Require every frame to have the configured resolution":     "全フレームが設定された解像度であることを要求",

		// Output flags
		"Output container path (default: ./video_output/video.bin)": "出力コンテナのパス（デフォルト: ./video_output/video.bin）",
		"Remove the artifacts after a successful build":             "作成成功後に中間ファイルを削除",
		"Output execution summary to file (Markdown format)":        "実行サマリーをファイルに出力（Markdown形式）",
		"Print the container layout as JSON":                        "コンテナの構造をJSONで出力",

		// Conversion flags
		"Artifact producer (none, native, exec)":                                            "中間ファイルの生成方法（none, native, exec）",
		"Directory holding <index>.png source images (default: ./vid_frames)":               "<index>.png 元画像のディレクトリ（デフォルト: ./vid_frames）",
		"Converter command for exec ({input}, {index}, {outdir}, {output} are substituted)": "exec で実行する変換コマンド（{input}, {index}, {outdir}, {output} を置換）",
		"Pixel byte order (swapped, native)":                                                "ピクセルのバイト順（swapped, native）",
		"Parallel conversions (default: number of CPUs)":                                    "並列変換数（デフォルト: CPU数）",
		"Do not show a progress bar":                                                        "プログレスバーを表示しない",

		// Preview flags
		"Write a PNG contact sheet of the selected frames": "選択したフレームのコンタクトシートをPNGで出力",
		"Frames to preview (default: the first 16)":        "プレビューするフレーム（デフォルト: 先頭16フレーム）",
		"Contact sheet columns":                            "コンタクトシートのカラム数",
		"Preview pixel scale":                              "プレビューの拡大倍率",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Summary content
		"Build Summary":      "作成サマリー",
		"Generated":          "生成日時",
		"Container":          "コンテナ",
		"Resolution":         "解像度",
		"Frames":             "フレーム数",
		"Frame Size":         "フレームサイズ",
		"File Size":          "ファイルサイズ",
		"Expected Size":      "想定サイズ",
		"mismatch":           "不一致",
		"Source Directory":   "元画像ディレクトリ",
		"Converted Frames":   "変換フレーム数",
		"Artifact Directory": "中間ファイルディレクトリ",
		"Settings":           "設定",
		"Converter":          "変換方法",
		"Byte Order":         "バイト順",
		"Workers":            "並列数",
		"Strict Resolution":  "解像度の厳密チェック",
		"Clean Artifacts":    "中間ファイルの削除",
		"Elapsed":            "所要時間",
		"yes":                "はい",
		"no":                 "いいえ",
	})
}
