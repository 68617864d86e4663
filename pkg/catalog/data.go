package catalog

import (
	"sync"

	"github.com/filecraft/contentprovider/pkg/contract"
)

// keys of grids, galleries, views and quizzes used as action ids
const (
	GridIntro      = "INTRO"
	GridSamples    = "SAMPLES"
	GridNestedGrid = "NESTED_GRID"

	GalleryAllImageTypes = "ALL_IMAGE_TYPES"
	GallerySVGBasicOnly  = "SVG_BASIC_ONLY"
	GalleryPNGOnly       = "PNG_ONLY"
	GalleryWebOnly       = "WEB_ONLY"
	GalleryImageTextMix  = "IMAGE_TEXT_MIX"

	ViewGithubTutorial = "WEB_GITHUB_TUTORIAL"
	ViewAndroidSetup   = "WEB_ANDROID_SETUP"
	ViewProviderDocs   = "WEB_CONTENTPROVIDER_DOCUMENTATION"
	ViewGooglePlay     = "WEB_GOOGLE_PLAY"
	ViewGithub         = "WEB_GITHUB"

	QuizJapaneseVocab  = "JAPANESE_VOCAB_SAMPLE"
	QuizJapaneseBasics = "JAPANESE_BASICS"

	SetJapaneseVocab  = "JAPANESE_VOCAB"
	SetJapaneseBasics = "JAPANESE_BASICS"
)

const (
	faviconURL          = "https://www.google.com/favicon.ico"
	contentProviderDocs = "http://developer.android.com/guide/topics/providers/content-providers.html"
)

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in tutorial catalog. It is built on the first call and shared after that,
// safe because the catalog is never modified.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(defaultTables())
		if err != nil {
			panic(err) // built-in data is static, this is a programming error
		}
		defaultCat = c
	})
	return defaultCat
}

func svg(key string) Resource   { return Resource{Key: key, Type: contract.SVGBasic} }
func png(key string) Resource   { return Resource{Key: key, Type: contract.RasterImage} }
func web(url string) Resource   { return Resource{URL: url, Type: contract.WebImage} }
func gridOf(key string) Action  { return Action{Type: contract.ActionGrid, Key: key} }
func viewOf(key string) Action  { return Action{Type: contract.ActionView, Key: key} }
func quizOf(key string) Action  { return Action{Type: contract.ActionQuiz, Key: key} }
func galleryOf(k string) Action { return Action{Type: contract.ActionGallery, Key: k} }

func defaultTables() Catalog {
	return Catalog{
		List: []ListEntry{
			{Icon: svg("raw/android_svg"), Name: "contentprovider_tutorial_title",
				Subtext: "contentprovider_tutorial_subtext", Grid: GridIntro},
			{Icon: png("drawable/ic_launcher"), Name: "contentprovider_examples_title",
				Subtext: "contentprovider_examples_subtext", Grid: GridSamples},
		},

		Grids: []Grid{
			{Key: GridIntro, Items: []GridEntry{
				{Icon: svg("raw/android_svg"), Text: "contentprovider_grid_android_title", Action: viewOf(ViewAndroidSetup)},
				{Icon: svg("raw/android_svg"), Text: "contentprovider_grid_documentation_title", Action: viewOf(ViewProviderDocs)},
				{Icon: svg("raw/octocat_svg"), Text: "contentprovider_grid_github_title", Action: viewOf(ViewGithubTutorial)},
			}},
			{Key: GridSamples, Items: []GridEntry{
				{Icon: svg("raw/up_arrow_svg"), Text: "contentprovider_grid_nested_grid", Action: gridOf(GridNestedGrid)},
				{Icon: svg("raw/text_svg"), Text: "contentprovider_grid_quiz_japanese_vocab", Action: quizOf(QuizJapaneseVocab)},
				{Icon: svg("raw/text_svg"), Text: "contentprovider_grid_quiz_japanese_basics", Action: quizOf(QuizJapaneseBasics)},
				{Icon: svg("raw/web_svg"), Text: "contentprovider_grid_link_google_play", Action: viewOf(ViewGooglePlay)},
				{Icon: svg("raw/web_svg"), Text: "contentprovider_grid_link_github", Action: viewOf(ViewGithub)},
				{Icon: svg("raw/gallery_svg"), Text: "contentprovider_grid_gallery_all", Action: galleryOf(GalleryAllImageTypes)},
				{Icon: svg("raw/gallery_svg"), Text: "contentprovider_grid_gallery_svg", Action: galleryOf(GallerySVGBasicOnly)},
				{Icon: svg("raw/gallery_svg"), Text: "contentprovider_grid_gallery_web", Action: galleryOf(GalleryWebOnly)},
				{Icon: svg("raw/gallery_svg"), Text: "contentprovider_grid_gallery_png", Action: galleryOf(GalleryPNGOnly)},
			}},
			{Key: GridNestedGrid, Items: []GridEntry{
				{Icon: svg("raw/up_arrow_svg"), Text: "contentprovider_grid_nested_grid_return", Action: gridOf(GridSamples)},
			}},
		},

		Galleries: []Gallery{
			{Key: GalleryAllImageTypes, Items: []GalleryEntry{
				{Image: svg("raw/image_svg")},
				{Image: png("raw/image")},
				{Image: web(faviconURL)},
			}},
			{Key: GallerySVGBasicOnly, Items: []GalleryEntry{
				{Image: svg("raw/download_svg")},
				{Image: svg("raw/gallery_svg")},
				{Image: svg("raw/image_svg")},
				{Image: svg("raw/web_svg")},
			}},
			{Key: GalleryPNGOnly, Items: []GalleryEntry{
				{Image: png("drawable/ic_launcher")},
				{Image: png("raw/download")},
				{Image: png("raw/gallery")},
				{Image: png("raw/image")},
				{Image: png("raw/web")},
			}},
			{Key: GalleryWebOnly, Items: []GalleryEntry{
				{Image: web(faviconURL)},
				{Image: web(faviconURL)},
				{Image: web(faviconURL)},
				{Image: web(faviconURL)},
			}},
			{Key: GalleryImageTextMix, Items: []GalleryEntry{
				{Image: svg("raw/image_svg"), Text: "contentprovider_gallery_split_text"},
				{Image: svg("raw/gallery_svg")},
				{Image: svg("raw/download_svg"), Text: "contentprovider_gallery_split_text"},
				{Image: svg("raw/web_svg")},
			}},
		},

		Views: []ViewLink{
			{Key: ViewGithubTutorial, URI: "https://github.com/b3ntt1nc4n/filecraft-contentprovider-intro", Type: contract.ViewTypeStandard},
			{Key: ViewAndroidSetup, URI: "http://developer.android.com/training/basics/firstapp/index.html", Type: contract.ViewTypeStandard},
			{Key: ViewProviderDocs, URI: contentProviderDocs, Type: contract.ViewTypeStandard},
			{Key: ViewGooglePlay, URI: "https://play.google.com/store", Type: contract.ViewTypeStandard},
			{Key: ViewGithub, URI: "https://github.com/", Type: contract.ViewTypeStandard},
		},

		Quizzes: []Quiz{
			{Key: QuizJapaneseVocab, Icon: svg("raw/text_svg"), Title: "contentprovider_grid_quiz_japanese_vocab",
				Description: "contentprovider_grid_quiz_subtext", AnswerSet: SetJapaneseVocab, Questions: 3},
			{Key: QuizJapaneseBasics, Icon: svg("raw/text_svg"), Title: "contentprovider_grid_quiz_japanese_basics",
				Description: "contentprovider_grid_quiz_subtext", AnswerSet: SetJapaneseBasics, Questions: len(japaneseBasics)},
		},

		VocabSets: []VocabSet{
			{Key: SetJapaneseVocab, Answers: 10, Items: japaneseVocab},
			{Key: SetJapaneseBasics, Answers: 6, Items: japaneseBasics},
		},
	}
}
