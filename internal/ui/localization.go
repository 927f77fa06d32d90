package ui

import (
	"log"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// LanguageSystem selects the language from the environment locale.
const LanguageSystem = "system"

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyOpenAssets        = "open_assets"
	KeyCancel            = "cancel"
	KeyConfirm           = "confirm"
	KeySave              = "save"
	KeyBrowse            = "browse"
	KeyAssetDirectory    = "asset_directory"
	KeyAssetExtension    = "asset_extension"
	KeyThumbnailPolicy   = "thumbnail_policy"
	KeyThumbnailSize     = "thumbnail_size"
	KeyMaxParallel       = "max_parallel"
	KeyDetectHorizontal  = "detect_horizontal"
	KeyDetectVertical    = "detect_vertical"
	KeyMeshReconstruct   = "mesh_reconstruction"
	KeySettingsSaved     = "settings_saved"
	KeyNoModels          = "no_models"
	KeyModelLoading      = "model_loading"
	KeyModelLoadFailed   = "model_load_failed"
	KeyModelPlaced       = "model_placed"
	KeyPlaceFailed       = "place_failed"
	KeyPlacedCount       = "placed_count"
	KeyTracking          = "tracking"
	KeyPlacing           = "placing"
	KeyUnresolvedAnchor  = "unresolved_anchor"
	KeyErrorOpeningAsset = "error_opening_assets"
)

// Localization manages UI text translations
type Localization struct {
	bundle          *i18n.Bundle
	localizer       *i18n.Localizer
	currentLanguage string
}

var supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}

// NewLocalization creates a new localization manager set to English
func NewLocalization() *Localization {
	bundle := i18n.NewBundle(language.English)
	for tag, messages := range translations {
		if err := bundle.AddMessages(tag, messages...); err != nil {
			log.Printf("ui: failed to add %s messages: %v", tag, err)
		}
	}

	l := &Localization{bundle: bundle}
	l.SetLanguage(language.English.String())
	return l
}

// SetLanguage sets the current language. "system" resolves the environment
// locale; unsupported languages fall back to English.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = systemLanguage()
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, index, _ := language.NewMatcher(supportedLanguages).Match(tag)
	matched := supportedLanguages[index]

	l.currentLanguage = matched.String()
	l.localizer = i18n.NewLocalizer(l.bundle, l.currentLanguage, language.English.String())
}

// systemLanguage reads the POSIX locale variables, e.g. "ru_RU.UTF-8" -> "ru-RU".
func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		return strings.ReplaceAll(value, "_", "-")
	}
	return language.English.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: key})
}

// GetTextf returns localized text for key rendered with data
func (l *Localization) GetTextf(key string, data map[string]interface{}) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// GetPlural returns the plural form of key for count
func (l *Localization) GetPlural(key string, count int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]interface{}{"Count": count},
	})
}

func (l *Localization) localize(cfg *i18n.LocalizeConfig) string {
	text, err := l.localizer.Localize(cfg)
	if err != nil && text == "" {
		// Final fallback - return key itself
		return cfg.MessageID
	}
	return text
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

var translations = map[language.Tag][]*i18n.Message{
	language.English: {
		{ID: KeyAppTitle, Other: "Model Picker"},
		{ID: KeySettings, Other: "Settings"},
		{ID: KeyFile, Other: "File"},
		{ID: KeyLanguage, Other: "Language"},
		{ID: KeyOpenAssets, Other: "Open Assets Folder"},
		{ID: KeyCancel, Other: "Cancel"},
		{ID: KeyConfirm, Other: "Place"},
		{ID: KeySave, Other: "Save"},
		{ID: KeyBrowse, Other: "Browse"},
		{ID: KeyAssetDirectory, Other: "Asset Directory"},
		{ID: KeyAssetExtension, Other: "Model Extension"},
		{ID: KeyThumbnailPolicy, Other: "Missing Thumbnails"},
		{ID: KeyThumbnailSize, Other: "Thumbnail Size"},
		{ID: KeyMaxParallel, Other: "Max Parallel Loads"},
		{ID: KeyDetectHorizontal, Other: "Detect horizontal planes"},
		{ID: KeyDetectVertical, Other: "Detect vertical planes"},
		{ID: KeyMeshReconstruct, Other: "Mesh reconstruction"},
		{ID: KeySettingsSaved, Other: "Settings saved. Restart to reload models."},
		{ID: KeyNoModels, Other: "No models found in {{.Dir}}"},
		{ID: KeyModelLoading, Other: "{{.Name}} is still loading"},
		{ID: KeyModelLoadFailed, Other: "Failed to load {{.Name}}"},
		{ID: KeyModelPlaced, Other: "Placed {{.Name}}"},
		{ID: KeyPlaceFailed, Other: "Could not place {{.Name}}"},
		{ID: KeyPlacedCount, One: "{{.Count}} model placed", Other: "{{.Count}} models placed"},
		{ID: KeyTracking, Other: "Tracking: {{.Planes}} planes, {{.Reconstruction}} reconstruction"},
		{ID: KeyPlacing, Other: "Placing {{.Name}}"},
		{ID: KeyUnresolvedAnchor, Other: "waiting for surface"},
		{ID: KeyErrorOpeningAsset, Other: "Error opening assets folder"},
	},
	language.Russian: {
		{ID: KeyAppTitle, Other: "Выбор модели"},
		{ID: KeySettings, Other: "Настройки"},
		{ID: KeyFile, Other: "Файл"},
		{ID: KeyLanguage, Other: "Язык"},
		{ID: KeyOpenAssets, Other: "Открыть папку моделей"},
		{ID: KeyCancel, Other: "Отмена"},
		{ID: KeyConfirm, Other: "Разместить"},
		{ID: KeySave, Other: "Сохранить"},
		{ID: KeyBrowse, Other: "Обзор"},
		{ID: KeyAssetDirectory, Other: "Папка моделей"},
		{ID: KeyAssetExtension, Other: "Расширение моделей"},
		{ID: KeyThumbnailPolicy, Other: "Без миниатюры"},
		{ID: KeyThumbnailSize, Other: "Размер миниатюр"},
		{ID: KeyMaxParallel, Other: "Макс. параллельных загрузок"},
		{ID: KeyDetectHorizontal, Other: "Искать горизонтальные плоскости"},
		{ID: KeyDetectVertical, Other: "Искать вертикальные плоскости"},
		{ID: KeyMeshReconstruct, Other: "Реконструкция сетки"},
		{ID: KeySettingsSaved, Other: "Настройки сохранены. Перезапустите для перезагрузки моделей."},
		{ID: KeyNoModels, Other: "В {{.Dir}} нет моделей"},
		{ID: KeyModelLoading, Other: "{{.Name}} ещё загружается"},
		{ID: KeyModelLoadFailed, Other: "Не удалось загрузить {{.Name}}"},
		{ID: KeyModelPlaced, Other: "{{.Name}} размещена"},
		{ID: KeyPlaceFailed, Other: "Не удалось разместить {{.Name}}"},
		{
			ID:    KeyPlacedCount,
			One:   "Размещена {{.Count}} модель",
			Few:   "Размещено {{.Count}} модели",
			Many:  "Размещено {{.Count}} моделей",
			Other: "Размещено {{.Count}} модели",
		},
		{ID: KeyTracking, Other: "Отслеживание: плоскости {{.Planes}}, реконструкция {{.Reconstruction}}"},
		{ID: KeyPlacing, Other: "Размещение: {{.Name}}"},
		{ID: KeyUnresolvedAnchor, Other: "ожидание поверхности"},
		{ID: KeyErrorOpeningAsset, Other: "Ошибка открытия папки моделей"},
	},
	language.Portuguese: {
		{ID: KeyAppTitle, Other: "Seletor de Modelos"},
		{ID: KeySettings, Other: "Configurações"},
		{ID: KeyFile, Other: "Arquivo"},
		{ID: KeyLanguage, Other: "Idioma"},
		{ID: KeyOpenAssets, Other: "Abrir Pasta de Modelos"},
		{ID: KeyCancel, Other: "Cancelar"},
		{ID: KeyConfirm, Other: "Posicionar"},
		{ID: KeySave, Other: "Salvar"},
		{ID: KeyBrowse, Other: "Navegar"},
		{ID: KeyAssetDirectory, Other: "Diretório de Modelos"},
		{ID: KeyAssetExtension, Other: "Extensão dos Modelos"},
		{ID: KeyThumbnailPolicy, Other: "Miniaturas Ausentes"},
		{ID: KeyThumbnailSize, Other: "Tamanho da Miniatura"},
		{ID: KeyMaxParallel, Other: "Max Carregamentos Paralelos"},
		{ID: KeyDetectHorizontal, Other: "Detectar planos horizontais"},
		{ID: KeyDetectVertical, Other: "Detectar planos verticais"},
		{ID: KeyMeshReconstruct, Other: "Reconstrução de malha"},
		{ID: KeySettingsSaved, Other: "Configurações salvas. Reinicie para recarregar os modelos."},
		{ID: KeyNoModels, Other: "Nenhum modelo encontrado em {{.Dir}}"},
		{ID: KeyModelLoading, Other: "{{.Name}} ainda está carregando"},
		{ID: KeyModelLoadFailed, Other: "Falha ao carregar {{.Name}}"},
		{ID: KeyModelPlaced, Other: "{{.Name}} posicionado"},
		{ID: KeyPlaceFailed, Other: "Não foi possível posicionar {{.Name}}"},
		{ID: KeyPlacedCount, One: "{{.Count}} modelo posicionado", Other: "{{.Count}} modelos posicionados"},
		{ID: KeyTracking, Other: "Rastreamento: planos {{.Planes}}, reconstrução {{.Reconstruction}}"},
		{ID: KeyPlacing, Other: "Posicionando {{.Name}}"},
		{ID: KeyUnresolvedAnchor, Other: "aguardando superfície"},
		{ID: KeyErrorOpeningAsset, Other: "Erro ao abrir pasta de modelos"},
	},
}
