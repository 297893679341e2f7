package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// message é uma tradução já preparada; tmpl só existe quando há interpolação
type message struct {
	text string
	tmpl *template.Template
}

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]message // [language][key]message
	defaultLanguage string
}

// NewService carrega os arquivos JSON de um diretório do disco
// localesDir: diretório contendo os arquivos JSON de tradução
// defaultLang: idioma padrão (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	if _, err := os.Stat(localesDir); err != nil {
		return nil, fmt.Errorf("failed to open locales dir %s: %w", localesDir, err)
	}
	return NewServiceFS(os.DirFS(localesDir), defaultLang)
}

// NewEmbeddedService usa as traduções compiladas no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, err
	}
	return NewServiceFS(sub, defaultLang)
}

// NewServiceFS carrega todos os *.json da raiz de fsys
func NewServiceFS(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]message),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var raw map[string]string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		messages := make(map[string]message, len(raw))
		for key, text := range raw {
			m := message{text: text}
			if strings.Contains(text, "{{") {
				tmpl, err := template.New(key).Parse(text)
				if err != nil {
					return nil, fmt.Errorf("invalid template %s in %s: %w", key, file, err)
				}
				m.tmpl = tmpl
			}
			messages[key] = m
		}
		s.translations[lang] = messages
	}

	// Verificar se o idioma padrão existe
	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Name}}, {{.Resource}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.lookup(lang, key)
	if !ok {
		m, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	if m.tmpl == nil || len(params) == 0 {
		return m.text
	}

	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, params[0]); err != nil {
		return m.text
	}

	return buf.String()
}

func (s *Service) lookup(lang, key string) (message, bool) {
	langMap, ok := s.translations[lang]
	if !ok {
		return message{}, false
	}
	m, ok := langMap[key]
	return m, ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna a lista ordenada de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
