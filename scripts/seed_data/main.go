package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/service"
)

// 示例数据生成器：分类、标签与演示文章。
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("数据库初始化失败")
	}

	taxonomy := service.NewTaxonomyService(gdb)
	posts := service.NewPostService(gdb)

	categories := []service.CategoryInput{
		{Name: "Machine Learning", Description: "ML algorithms, models, and techniques", Color: "#3B82F6", Icon: "brain", SortOrder: 1},
		{Name: "Data Science", Description: "Data analysis, visualization, and insights", Color: "#10B981", Icon: "chart", SortOrder: 2},
		{Name: "Deep Learning", Description: "Neural networks and AI", Color: "#8B5CF6", Icon: "network", SortOrder: 3},
		{Name: "Python", Description: "Python programming and libraries", Color: "#F59E0B", Icon: "code", SortOrder: 4},
	}
	for _, input := range categories {
		if _, err := taxonomy.CreateCategory(input); err != nil && err != service.ErrCategoryExists {
			log.Fatal().Err(err).Str("category", input.Name).Msg("创建分类失败")
		}
	}

	tags := []string{"transformers", "pytorch", "pandas", "visualization", "nlp", "tutorial"}
	for _, name := range tags {
		if _, err := taxonomy.CreateTag(name, ""); err != nil && err != service.ErrTagExists {
			log.Fatal().Err(err).Str("tag", name).Msg("创建标签失败")
		}
	}

	samples := []service.PostInput{
		{
			Title:    "Getting Started with Transformers",
			Content:  "<p>Attention is all you need, and a little patience.</p>",
			Excerpt:  "A practical introduction to transformer models.",
			Category: "machine-learning",
			Tags:     []string{"transformers", "tutorial"},
			Status:   db.PostStatusPublished,
		},
		{
			Title:    "Exploratory Data Analysis with Pandas",
			Content:  "<p>Before modeling, look at your data.</p>",
			Excerpt:  "EDA patterns that catch problems early.",
			Category: "data-science",
			Tags:     []string{"pandas", "visualization"},
			Status:   db.PostStatusPublished,
		},
		{
			Title:    "Notes on Fine-Tuning",
			Content:  "<p>Draft in progress.</p>",
			Excerpt:  "Work in progress notes.",
			Category: "deep-learning",
			Tags:     []string{"pytorch"},
			Status:   db.PostStatusDraft,
		},
	}
	for _, input := range samples {
		if _, err := posts.Create(input, nil); err != nil && err != service.ErrSlugTaken {
			log.Fatal().Err(err).Str("title", input.Title).Msg("创建文章失败")
		}
	}

	fmt.Println("示例数据生成完毕")
}
