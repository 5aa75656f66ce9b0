package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyegi/calendar/internal/config"
)

var translationKeys = []string{
	config.TKeyWinTitle,
	config.TKeyWinSettings,
	config.TKeyWinAdmin,
	config.TKeyHeaderToday,
	config.TKeyBtnYear,
	config.TKeyBtnMonth,
	config.TKeyBtnPrevMonth,
	config.TKeyBtnNextMonth,
	config.TKeyBtnTheme,
	config.TKeyBtnSuggest,
	config.TKeyBtnAdmin,
	config.TKeyBtnSettings,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyBtnClose,
	config.TKeyBtnSubmit,
	config.TKeyBtnLogin,
	config.TKeyBtnExportVCard,
	config.TKeyBtnLessonPlan,
	config.TKeyMonthName,
	config.TKeyNoEvents,
	config.TKeyUndatedTitle,
	config.TKeyTopicsTitle,
	config.TKeyTopicDate,
	config.TKeyTopicDesc,
	config.TKeyTopicNotes,
	config.TKeyTopicNoResources,
	config.TKeyNoNotes,
	config.TKeyNoGradeResources,
	config.TKeyResNotReady,
	config.TKeyResVideo,
	config.TKeyResPPT,
	config.TKeyResWorksheet,
	config.TKeyResQuiz,
	config.TKeyGradeCommon,
	config.TKeyGradeLower,
	config.TKeyGradeUpper,
	config.TKeyWeekdaySun,
	config.TKeyWeekdayMon,
	config.TKeyWeekdayTue,
	config.TKeyWeekdayWed,
	config.TKeyWeekdayThu,
	config.TKeyWeekdayFri,
	config.TKeyWeekdaySat,
	config.TKeyThemeTitle,
	config.TKeyThemePrompt,
	config.TKeyThemeLight,
	config.TKeyThemeDark,
	config.TKeySuggestTitle,
	config.TKeyLblContact,
	config.TKeyLblMessage,
	config.TKeySuggestEmpty,
	config.TKeySuggestSaved,
	config.TKeySuggestFailed,
	config.TKeyAdminLoginTitle,
	config.TKeyLblPassword,
	config.TKeyAdminDenied,
	config.TKeyAdminLoadFailed,
	config.TKeyNoSuggestions,
	config.TKeyColCreated,
	config.TKeyColContact,
	config.TKeyColMessage,
	config.TKeyExportDone,
	config.TKeyPlanTitle,
	config.TKeyPlanGenerating,
	config.TKeyPlanFailed,
	config.TKeyLblLanguage,
	config.TKeyLblTheme,
	config.TKeyLblPort,
	config.TKeyHelpPort,
	config.TKeyLblDatasetURL,
	config.TKeyHelpDatasetURL,
	config.TKeyLblFooter,
	config.TKeyNoticeTitle,
	config.TKeyErrPortReq,
	config.TKeyErrPortNum,
	config.TKeyErrPortRange,
}

func loadLocale(t *testing.T, lang string) map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
	require.NoError(t, err, "Must load active.%s.json", lang)

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each locale file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool, len(translationKeys))
	for _, k := range translationKeys {
		definedKeys[k] = true
	}

	for _, lang := range []string{"ko", "en"} {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for _, key := range translationKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in active.%s.json but not in config.go", jsonKey, lang)
				}
			}
		})
	}
}

func TestI18nTemplates(t *testing.T) {
	for _, lang := range []string{"ko", "en"} {
		jsonMap := loadLocale(t, lang)
		assert.Contains(t, jsonMap[config.TKeyHeaderToday], "{{.Day}}", lang)
		assert.Contains(t, jsonMap[config.TKeyMonthName], "{{.Month}}", lang)
		assert.Contains(t, jsonMap[config.TKeyExportDone], "{{.Path}}", lang)
		assert.Contains(t, jsonMap[config.TKeyLblFooter], "%s", lang)
	}
}
