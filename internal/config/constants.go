package config

import "time"

// Base application details
const AppName = "quill"
const ConfigDirName = "quill"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "quill.log"

// Journal days are keyed by their calendar date in this layout.
const DayLayout = "2006-01-02"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultHistoryCapacity = 1000
const SystemClipboard = true

// Default stop sets of the Ctrl word and sentence deletes.
const DefaultWordStops = " \t.,;:!?\"'`()[]{}<>-/\\"
const DefaultSentenceStops = ".!?"
