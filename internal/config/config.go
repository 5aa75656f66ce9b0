package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Gyegi-Calendar/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "계기교육 캘린더"
	AppID             = "com.github.gyegi.calendar"
	CtlName           = "gyegictl"
	KeyringService    = "com.github.gyegi.calendar"
	KeyringAdminUser  = "admin"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	IconFile          = "Icon.png"
	CtlLogFileName    = "ctl.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs, the suggestions database and exported files.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagMonthView    = "month-view"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescMonth    = "Start in the month view instead of the year view"
	MsgVersionOutput = "%s version %s (%s/%s)\n"

	FlagPath       = "path"
	FlagYear       = "year"
	FlagMonth      = "month"
	FlagGrade      = "grade"
	FlagOut        = "out"
	FlagPort       = "port"
	FlagContact    = "contact"
	FlagMessage    = "message"
	FlagPassword   = "password"
	FlagDelay      = "delay"
	FlagDatasetURL = "dataset-url"

	UsagePath       = "The path for storage"
	UsageYear       = "Calendar year to show"
	UsageMonth      = "Month (1-12) to show, defaults to the current month"
	UsageGrade      = "Grade band: common, lower or upper"
	UsageOut        = "Output file, stdout when empty"
	UsageOutDir     = "Output directory, the system temp directory when empty"
	UsagePort       = "Port for the iCalendar feed"
	UsageContact    = "Contact e-mail, anonymous when empty"
	UsageMessage    = "Suggestion text"
	UsagePassword   = "Admin password"
	UsageDelay      = "Simulated lesson plan generation delay"
	UsageDatasetURL = "Load the events dataset from this URL instead of the embedded copy"
	UsageDebug      = "Output debug messages"

	CmdYear           = "year"
	CmdMonth          = "month"
	CmdEvent          = "event"
	CmdBrowse         = "browse"
	CmdSuggest        = "suggest"
	CmdSuggestions    = "suggestions"
	CmdExportContacts = "export-contacts"
	CmdExportICS      = "export-ics"
	CmdServe          = "serve"
	CmdLessonPlan     = "lesson-plan"
	CmdAdminPassword  = "admin-password"

	CmdUsageYear           = "Prints the year overview"
	CmdUsageMonth          = "Prints a month grid"
	CmdUsageEvent          = "Shows the event on a date (YYYY-MM-DD) and its resources"
	CmdUsageBrowse         = "Browses the calendar interactively"
	CmdUsageSuggest        = "Stores a suggestion"
	CmdUsageSuggestions    = "Lists stored suggestions, newest first (admin)"
	CmdUsageExportContacts = "Exports suggestion contacts as vCards (admin)"
	CmdUsageExportICS      = "Writes the dated events as an iCalendar file"
	CmdUsageServe          = "Serves the dated events as an iCalendar feed"
	CmdUsageLessonPlan     = "Generates a printable lesson plan for the event on a date"
	CmdUsageAdminPassword  = "Stores a new admin password in the system keyring"

	CtlUsage        = "Browse and export the educational events calendar from a terminal"
	DataDirName     = "gyegi"
	ArgsDateOrID    = "YYYY-MM-DD|ID"
	ArgsNewPassword = "NEW_PASSWORD"
	ArgsMessage     = "[MESSAGE]"

	OutSuggestionSaved  = "saved suggestion %s\n"
	OutFileWritten      = "wrote %s\n"
	OutContactsExported = "exported %d contacts\n"
	OutEventsExported   = "exported %d events\n"
	OutPasswordStored   = "admin password updated\n"
	OutServing          = "serving %s://%s:%s%s\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 1024
	MainWindowHeight    = 768
	SettingsWindowWidth = 480
	AdminWinWidth       = 720
	AdminWinHeight      = 420
	EventDialogWidth    = 520
	EventDialogHeight   = 420

	YearGridColumns  = 4
	WeekGridColumns  = 7
	TopicGridColumns = 3

	// Preference Keys
	PrefLanguage   = "language"
	PrefTheme      = "theme"
	PrefServerPort = "server_port"
	PrefDatasetURL = "dataset_url"
	PrefLastRun    = "last_run_version"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"ko", "en"}

// -----------------------------------------------------------------------------
// Admin Suggestions Table
// -----------------------------------------------------------------------------

const (
	ColIDCreated = 0
	ColIDContact = 1
	ColIDMessage = 2

	ColWidthCreated = 170
	ColWidthContact = 180
	ColWidthMessage = 340

	DateTimeFormatDisplay = "2006-01-02 15:04"
	TablePlaceholder      = "Cell Content"
	LogMsgOpenAdmin       = "Opening admin panel"
	LogMsgSorted          = "Suggestions sorted"

	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle         = "win_title"
	TKeyWinSettings      = "win_settings_title"
	TKeyWinAdmin         = "win_admin_title"
	TKeyHeaderToday      = "header_today"
	TKeyBtnYear          = "btn_year_view"
	TKeyBtnMonth         = "btn_month_view"
	TKeyBtnPrevMonth     = "btn_prev_month"
	TKeyBtnNextMonth     = "btn_next_month"
	TKeyBtnTheme         = "btn_theme"
	TKeyBtnSuggest       = "btn_suggest"
	TKeyBtnAdmin         = "btn_admin"
	TKeyBtnSettings      = "btn_settings"
	TKeyBtnSave          = "btn_save"
	TKeyBtnCancel        = "btn_cancel"
	TKeyBtnClose         = "btn_close"
	TKeyBtnSubmit        = "btn_submit"
	TKeyBtnLogin         = "btn_login"
	TKeyBtnExportVCard   = "btn_export_vcard"
	TKeyBtnLessonPlan    = "btn_lesson_plan"
	TKeyMonthName        = "month_name" // Requires Month
	TKeyNoEvents         = "no_events"
	TKeyUndatedTitle     = "undated_title"
	TKeyTopicsTitle      = "topics_title"
	TKeyTopicDate        = "topic_date"
	TKeyTopicDesc        = "topic_desc"
	TKeyTopicNotes       = "topic_notes"
	TKeyTopicNoResources = "topic_no_resources"
	TKeyNoNotes          = "no_notes"
	TKeyNoGradeResources = "no_grade_resources"
	TKeyResNotReady      = "resource_not_ready"
	TKeyResVideo         = "resource_video"
	TKeyResPPT           = "resource_ppt"
	TKeyResWorksheet     = "resource_worksheet"
	TKeyResQuiz          = "resource_quiz"
	TKeyGradeCommon      = "grade_common"
	TKeyGradeLower       = "grade_lower"
	TKeyGradeUpper       = "grade_upper"
	TKeyWeekdaySun       = "weekday_sun"
	TKeyWeekdayMon       = "weekday_mon"
	TKeyWeekdayTue       = "weekday_tue"
	TKeyWeekdayWed       = "weekday_wed"
	TKeyWeekdayThu       = "weekday_thu"
	TKeyWeekdayFri       = "weekday_fri"
	TKeyWeekdaySat       = "weekday_sat"
	TKeyThemeTitle       = "theme_title"
	TKeyThemePrompt      = "theme_prompt"
	TKeyThemeLight       = "theme_light"
	TKeyThemeDark        = "theme_dark"
	TKeySuggestTitle     = "suggest_title"
	TKeyLblContact       = "lbl_contact"
	TKeyLblMessage       = "lbl_message"
	TKeySuggestEmpty     = "suggest_empty"
	TKeySuggestSaved     = "suggest_saved"
	TKeySuggestFailed    = "suggest_failed"
	TKeyAdminLoginTitle  = "admin_login_title"
	TKeyLblPassword      = "lbl_password"
	TKeyAdminDenied      = "admin_denied"
	TKeyAdminLoadFailed  = "admin_load_failed"
	TKeyNoSuggestions    = "no_suggestions"
	TKeyColCreated       = "col_created"
	TKeyColContact       = "col_contact"
	TKeyColMessage       = "col_message"
	TKeyExportDone       = "export_done"
	TKeyPlanTitle        = "plan_title"
	TKeyPlanGenerating   = "plan_generating"
	TKeyPlanFailed       = "plan_failed"
	TKeyLblLanguage      = "lbl_language"
	TKeyLblTheme         = "lbl_theme"
	TKeyLblPort          = "lbl_server_port"
	TKeyHelpPort         = "help_port"
	TKeyLblDatasetURL    = "lbl_dataset_url"
	TKeyHelpDatasetURL   = "help_dataset_url"
	TKeyLblFooter        = "lbl_footer"
	TKeyNoticeTitle      = "notice_title"
	TKeyErrPortReq       = "err_port_required"
	TKeyErrPortNum       = "err_port_number"
	TKeyErrPortRange     = "err_port_range"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultYear          = 2026
	DefaultPort          = "18081"
	DefaultLanguage      = "ko"
	DefaultTheme         = ThemeLight
	DefaultPlanDelay     = 2 * time.Second
	DefaultAdminPassword = "5050" // Shared client-side gate, not a security boundary.
	SuggestionStorageKey = "suggestions"
	AnonymousContact     = "익명"
	PlaceholderLink      = "#"
	MonthsPerYear        = 12
	DaysPerWeek          = 7
)

// MonthIcons decorates month cards, indexed by month-1.
var MonthIcons = [MonthsPerYear]string{"❄️", "🍫", "🌱", "🌸", "🌹", "🌿", "🏖️", "🍉", "🍁", "🎃", "🍂", "⛄"}

// -----------------------------------------------------------------------------
// Terminal Labels
// -----------------------------------------------------------------------------

// WeekdayLabels heads the month grid, Sunday first.
var WeekdayLabels = [DaysPerWeek]string{"일", "월", "화", "수", "목", "금", "토"}

const (
	TUIYearTitle      = "%d년 계기교육"
	TUIMonthTitle     = "%d년 %d월 %s"
	EventLineFormat   = "%d/%d %s"
	TUIThemeLine      = "이달의 주제: %s"
	TUIHintForward    = "▶ "
	TUIHintBackward   = "◀ "
	TUIMarkEvent      = "*"
	TUIMarkToday      = ">"
	TUIThemeFill      = "~"
	TUICellWidth      = 4
	TUILabelVideo     = "영상"
	TUILabelPPT       = "PPT"
	TUILabelSheet     = "활동지"
	TUILabelQuiz      = "퀴즈"
	TUILabelNotes     = "특이사항"
	TUIResourceLine   = "  %s: %s"
	TUIHelp           = "y 연간 · m 월간 · ←/→ 이동 · 1-9 0 - = 월 선택 · tab 일정 선택 · enter 상세 · esc 닫기 · q 종료"
	TUIPasswordAsk    = "관리자 비밀번호:"
	TUINewPasswordAsk = "새 관리자 비밀번호:"
	TUISuggestionRow  = "%s\t%s\t%s\n"
)

// -----------------------------------------------------------------------------
// Lesson Plans
// -----------------------------------------------------------------------------

const (
	PlanTitleFormat      = "%s 계기교육 지도안"
	PlanGradeLower       = "초등학교 1-3학년"
	PlanGradeUpper       = "초등학교 4-6학년"
	PlanObjectiveOrigin  = "%s의 유래와 의미를 설명할 수 있다."
	PlanObjectiveValue   = "관련 활동을 통해 %s의 가치를 내면화한다."
	PlanActivityIntroT   = "10분"
	PlanActivityIntro    = "동기유발: 관련 영상 시청 및 퀴즈"
	PlanActivityMainT    = "20분"
	PlanActivityMain     = "전개: 주요 사건 및 인물 탐구"
	PlanActivityWrapT    = "10분"
	PlanActivityWrap     = "정리: 소감 나누기 및 활동지 작성"
	PlanQuestionWhat     = "%s은(는) 어떤 날인가요?"
	PlanQuestionRemember = "오늘 배운 내용 중 가장 기억에 남는 것은 무엇인가요?"

	PrintLabelGrade     = "대상 학년"
	PrintLabelGenerated = "생성일"
	PrintHeadObjectives = "1. 학습 목표"
	PrintHeadFlow       = "2. 수업 흐름 (40분)"
	PrintHeadWorksheet  = "📝 활동지"
	PrintColTime        = "시간"
	PrintColActivity    = "활동 내용"
	PrintFileNameFormat = "lesson-plan-%s.html"
	PrintDateFormat     = "2006. 1. 2."
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Gyegi Calendar//Events//KO"
	ICalCalName = "계기교육 캘린더"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gyegi"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropDescription = "DESCRIPTION"
	PropCategories  = "CATEGORIES"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultICalRefresh = 24 * time.Hour

	FormatUID = "%s@%s"
)

// -----------------------------------------------------------------------------
// Data Formats & Storage
// -----------------------------------------------------------------------------

const (
	DateFormatISO    = "2006-01-02"
	FormatISODate    = "%04d-%02d-%02d"
	BoltFileName     = "gyegi.bdb"
	BoltRootBucket   = "gyegi"
	BoltOpenTimeout  = time.Second
	ExtVCF           = ".vcf"
	ExtVCard         = ".vcard"
	DefaultVCardFile = "suggestions.vcf"
	EmailSeparator   = "@"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 8 * 1024 * 1024 // 8MB, the dataset is a few KB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	SchemeFile          = "file"
	RouteRoot           = "/"
	AddrSeparator       = ":"
	PlaceholderURL      = "https://example.org/calendar.json"
	MinPort             = 1
	MaxPort             = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderAccept          = "Accept"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDateParse         = "unable to parse date"
	ErrMonthRange        = "month out of range 1..12"
	ErrGridOverflow      = "month does not fit the 42-cell grid"
	ErrInvalidMonth      = "invalid month"
	ErrUnknownIntent     = "unknown navigation intent"
	ErrPersistence       = "suggestion storage failure"
	ErrDecodeSuggestions = "failed to decode stored suggestions"
	ErrEncodeSuggestions = "failed to encode suggestions"
	ErrEmptyMessage      = "suggestion message is empty"
	ErrVCardEncode       = "failed to encode vCard"
	ErrExport            = "lesson plan export failed"
	ErrPlanGenerate      = "lesson plan generation failed"
	ErrPlanRender        = "failed to render printable lesson plan"
	ErrPrint             = "failed to open printable document"
	ErrDatasetDecode     = "failed to decode events dataset"
	ErrInvalidURL        = "invalid URL structure"
	ErrRequestCreate     = "failed to create request"
	ErrNetwork           = "network error during fetch"
	ErrHTTPStatus        = "server returned unexpected status"
	ErrProtocol          = "unsupported protocol scheme (http/https only)"
	ErrICalEncode        = "failed to encode iCalendar data"
	ErrOpenDB            = "could not open database"
	ErrCloseDB           = "could not close database"
	ErrBucketCreate      = "unable to create root bucket"
	ErrBucketMissing     = "invalid bucket"
	ErrBucketReadOnly    = "non writeable root bucket"
	ErrServerStartup     = "server startup failed"
	ErrServerShutdown    = "server shutdown failed"
	ErrPortRequired      = "server port is required"
	ErrPortNumber        = "server port must be a number"
	ErrPortRange         = "server port must be between 1 and 65535"
	ErrAdminDenied       = "admin password rejected"
	ErrPasswordEmpty     = "password must not be empty"
	ErrKeyringSet        = "failed to store admin password in keyring"
	ErrEventNotFound     = "no event on that date"
	ErrInvalidGrade      = "invalid grade band"
	ErrWriteOutput       = "failed to write output"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app directory"
	ErrAppFailed         = "application failed unexpectedly"
	ErrWriteResp         = "failed to write response body"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrTerminalUI        = "terminal UI failed"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackMonthName     = "%d월"
	FallbackNoEvents      = "일정 없음"
	FallbackNoSuggestions = "접수된 제안이 없습니다."
	FallbackNoNotes       = "특이사항 없음"
	FallbackNotReady      = "준비 중인 자료입니다."
	FallbackTopicDate     = "공통 계기교육"
	FallbackTopicDesc     = "이 주제에 대한 교육 자료를 확인하세요."
	FallbackTopicNotes    = "학년별 수준에 맞는 다양한 활동을 계획해보세요."

	// StubVCalendar is the minimal valid iCalendar object used when no events are dated.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleStartupError = "Startup Error"

	MsgPortBusy          = "Port %s is busy or unavailable."
	MsgAppStop           = "Application stopped gracefully"
	MsgCtxCancel         = "Context cancelled, shutting down UI"
	MsgAppStarting       = "Starting application"
	MsgServerListen      = "HTTP server listening"
	MsgServerStop        = "Shutting down HTTP server..."
	MsgCacheUpdated      = "Calendar cache updated"
	MsgLocaleSkip        = "Skipping non-locale file"
	MsgLocaleBadName     = "Skipping malformed locale filename"
	MsgLocaleLoaded      = "Locale loaded successfully"
	MsgTransMissing      = "Missing translation key"
	MsgLogWarning        = "Warning: %s at %s: %v\n"
	MsgDatasetLoaded     = "Events dataset loaded"
	MsgSkippedRecord     = "Skipping event with malformed date"
	MsgSkippedBand       = "Skipping unknown grade band"
	MsgDuplicateDate     = "Several active events share a date, the first one wins lookups"
	MsgDatasetFallback   = "Remote dataset unavailable, using embedded copy"
	MsgFetchStart        = "Initiating dataset download"
	MsgFetchBadStatus    = "Server returned error status"
	MsgFetchDownloading  = "Dataset downloading"
	MsgNavigate          = "Navigation state changed"
	MsgOpenEvent         = "Opening event"
	MsgEventMiss         = "No event on the selected date"
	MsgRender            = "Rendering view"
	MsgSuggestionSaved   = "Suggestion stored"
	MsgSuggestionsLoaded = "Suggestions loaded"
	MsgSuggestionsReset  = "Stored suggestions unreadable, treating as empty"
	MsgAdminLogin        = "Admin login attempt"
	MsgAdminPassFallback = "Admin password not found in keyring, using default"
	MsgPlanRequested     = "Lesson plan requested"
	MsgPlanReady         = "Lesson plan generated"
	MsgPlanCancelled     = "Lesson plan generation cancelled"
	MsgPrinted           = "Printable lesson plan written"
	MsgICSGenerated      = "Calendar feed generated"
	MsgContactsExported  = "Suggestion contacts exported"
	MsgThemeApplied      = "Theme applied"
	MsgSaving            = "Saving preferences"
	MsgOpenSettings      = "Opening settings window"
	MsgDBOpened          = "Database opened"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyYear      = "year"
	LogKeyMonth     = "month"
	LogKeyDate      = "date"
	LogKeyHint      = "hint"
	LogKeyEventID   = "event_id"
	LogKeyCount     = "count"
	LogKeyTotal     = "total_records"
	LogKeyDated     = "dated"
	LogKeyUndated   = "undated"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyTheme     = "theme"
	LogKeyGrade     = "grade"
	LogKeyPath      = "path"
	LogKeyGranted   = "granted"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"
	LogKeyDuration  = "duration_ms"
	LogKeyContentLn = "content_length"
	LogKeyTopics    = "topics"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI         = "ui"
	CompUISet      = "ui_settings"
	CompUIAdmin    = "ui_admin"
	CompNav        = "nav"
	CompDataset    = "dataset"
	CompFetcher    = "fetcher"
	CompSuggestion = "suggestion"
	CompAdmin      = "admin"
	CompPlan       = "lessonplan"
	CompExport     = "export"
	CompServer     = "server"
	CompStorage    = "storage"
	CompTUI        = "tui"
	CompCtl        = "ctl"
	CompMain       = "main"
	CompI18n       = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
