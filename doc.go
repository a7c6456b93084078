// Package linelog writes tagged, colorized log lines to a terminal.
//
// A [Logger] is configured once by [New] and then writes one line per call.
// Each line has a gray prefix, a colored kind label and the message:
//
//	[14:03:27] [main.go] [MAIN] SUCCESS   : build finished in 3s
//
// # Kinds
//
// Every logger has the kinds "error", "debug", "success" and "warn", with
// the methods [Logger.Error], [Logger.Debug], [Logger.Success] and
// [Logger.Warn]. Further kinds are added with [WithKind] or the "loggers"
// section of a configuration file and are reached through [Logger.Log] or
// [Logger.Kind]:
//
//	l, err := linelog.New(linelog.WithKind("info", linelog.Kind{Tag: "info", Color: "cyan"}))
//	info, err := l.Kind("info")
//	info("listening on %a", addr)
//
// The set of kinds is fixed when the logger is created.
//
// # Placeholders
//
// Each "%a" in a message is replaced by the next argument, colored like the
// kind label. A missing argument leaves the placeholder empty; extra
// arguments are ignored.
//
// # Prefix
//
// The prefix holds, in order and each optional: the date (DD.MM.YY), the
// time (HH:mm:ss), the base name of the calling source file, and the tag.
// [WithTagLength] and [WithFileLength] pad the tag and file segments to a
// fixed width so consecutive lines align.
//
// # Interactive Mode
//
// With [WithInteractive], every line after the first moves the cursor up,
// clears the previous line and writes over it. This is for progress output
// on a terminal; on other streams the control sequences are written as is.
//
// # Configuration
//
// Configuration is layered, later layers winning per field: built-in
// defaults, a project file, then options in the order given. The project
// file is the first of .linelog.yaml, .linelog.yml, .linelog.toml,
// .linelog.json or the "linelog" member of package.json found in the working
// directory (see [WithProjectDir], [WithConfigFile], [WithoutProjectFile]).
// A field set to false or 0 overrides the layer below; only absent fields
// fall through. Kinds merge by name and are never removed.
//
// [WriteConfig] encodes a [Config] in any [FileFormat], and
// [Settings.Config] turns a running logger's configuration back into a
// layer, so a setup can be saved as a project file.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown configuration file format
//   - [ErrConfigNotFound] — a file named by [WithConfigFile] does not exist
//   - [ErrMalformedConfig] — a configuration file cannot be decoded
//   - [ErrInvalidConfig] — a layer fails validation, see [ValidationErrors]
//   - [ErrUnknownKind] — no such kind
//   - [ErrWrite] — the output stream rejected a line
package linelog
