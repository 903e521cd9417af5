package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"book_scanner/internal/app/di"
	catalogusecase "book_scanner/internal/feature/catalog/usecase"
	"book_scanner/internal/feature/scan/adapters/opencv"
	"book_scanner/internal/feature/scan/domain/entity"
	scanusecase "book_scanner/internal/feature/scan/usecase"
)

func main() {
	imagePath := flag.String("image", "", "scan対象の画像ファイル")
	mode := flag.String("mode", "balanced", "前処理モード (minimal|balanced|tophat)")
	lookup := flag.Bool("lookup", false, "Open Libraryで書誌情報を解決する")
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("usage: scan -image <path> [-mode balanced] [-lookup]")
	}

	_ = godotenv.Load()

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatal("failed to read image:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	detector, cleanup, err := di.NewTextDetector(ctx)
	if err != nil {
		log.Fatal("failed to initialize OCR backend:", err)
	}
	defer cleanup()

	var resolver scanusecase.CatalogResolver
	if *lookup {
		// CLIではキャッシュなし（rdb=nil）・紹介文なしで解決する
		resolver = catalogusecase.NewCatalogUsecase(di.NewCatalogRepository(nil), nil)
	}

	uc := scanusecase.NewScanUsecase(opencv.NewPreprocessor(), detector, resolver)

	result, err := uc.Scan(ctx, data, entity.ProcessingMode(*mode))
	if err != nil {
		log.Fatal(err)
	}

	if !result.Found {
		fmt.Println("no text detected - try a different mode")
		return
	}

	for _, r := range result.Regions {
		fmt.Printf("%q | confidence: %d%% | box: (%d, %d, %d, %d)\n",
			r.Text, r.Confidence, r.Left, r.Top, r.Width, r.Height)
	}
	fmt.Println("full text:", result.Text)

	if result.Hint.CallNumber != "" {
		fmt.Println("call number:", result.Hint.CallNumber)
	}
	if result.Hint.TitleHint != "" {
		fmt.Println("title hint:", result.Hint.TitleHint)
	}
	if result.Hint.AuthorHint != "" {
		fmt.Println("author hint:", result.Hint.AuthorHint)
	}

	if result.Book != nil {
		fmt.Println("---")
		fmt.Println("title:", result.Book.Title)
		fmt.Println("author:", result.Book.Author)
		if result.Book.FirstPublishYear != 0 {
			fmt.Println("published:", result.Book.FirstPublishYear)
		}
		if result.Book.ISBN != "" {
			fmt.Println("isbn:", result.Book.ISBN)
		}
	}
}
