package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pb "github.com/gocommerce/catalog/pkg/api/gen/go/product/v1"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var errUsage = errors.New("usage: catalogctl <create|list|get|update|delete> [flags]")

var printer = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

// execute runs one subcommand and prints the response as indented protojson to out.
// A response with success=false is printed and reported as an error.
func execute(ctx context.Context, client pb.ProductServiceClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		res     proto.Message
		success bool
		err     error
	)
	switch cmd {
	case "create":
		res, success, err = create(ctx, client, fs, rest)
	case "list":
		res, success, err = list(ctx, client, fs, rest)
	case "get":
		res, success, err = get(ctx, client, fs, rest)
	case "update":
		res, success, err = update(ctx, client, fs, rest)
	case "delete":
		res, success, err = remove(ctx, client, fs, rest)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	if err != nil {
		return err
	}

	b, err := printer.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(b)); err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	if !success {
		return fmt.Errorf("%s was rejected", cmd)
	}
	return nil
}

func create(ctx context.Context, client pb.ProductServiceClient, fs *flag.FlagSet, args []string) (proto.Message, bool, error) {
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	price := fs.Float64("price", 0, "product price")
	category := fs.String("category", "", "product category")
	image := fs.String("image", "", "path of the image file")
	admin := fs.String("admin", "", "admin id (UUID v4)")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	req := &pb.CreateProductRequest{
		Name:        *name,
		Description: *description,
		Price:       *price,
		Category:    *category,
		AdminId:     *admin,
	}
	if *image != "" {
		data, err := os.ReadFile(*image)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read image: %w", err)
		}
		req.Image = data
		req.ImageFileName = filepath.Base(*image)
	}
	res, err := client.CreateProduct(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return res, res.Success, nil
}

func list(ctx context.Context, client pb.ProductServiceClient, fs *flag.FlagSet, args []string) (proto.Message, bool, error) {
	category := fs.String("category", "", "exact category")
	active := fs.Bool("active", true, "active flag to match")
	search := fs.String("search", "", "substring of the name or description")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	req := &pb.GetProductsRequest{}
	set := setFlags(fs)
	if set["category"] {
		req.Category = category
	}
	if set["active"] {
		req.IsActive = active
	}
	if set["search"] {
		req.SearchName = search
	}
	res, err := client.GetProducts(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return res, res.Success, nil
}

func get(ctx context.Context, client pb.ProductServiceClient, fs *flag.FlagSet, args []string) (proto.Message, bool, error) {
	id := fs.String("id", "", "product id")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	res, err := client.GetProductById(ctx, &pb.GetProductByIdRequest{Id: *id})
	if err != nil {
		return nil, false, err
	}
	return res, res.Success, nil
}

func update(ctx context.Context, client pb.ProductServiceClient, fs *flag.FlagSet, args []string) (proto.Message, bool, error) {
	id := fs.String("id", "", "product id")
	admin := fs.String("admin", "", "admin id (UUID v4)")
	name := fs.String("name", "", "new name")
	description := fs.String("description", "", "new description")
	price := fs.Float64("price", 0, "new price")
	category := fs.String("category", "", "new category")
	image := fs.String("image", "", "path of the replacement image")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	req := &pb.UpdateProductRequest{Id: *id, AdminId: *admin}
	set := setFlags(fs)
	if set["name"] {
		req.Name = name
	}
	if set["description"] {
		req.Description = description
	}
	if set["price"] {
		req.Price = price
	}
	if set["category"] {
		req.Category = category
	}
	if set["image"] {
		data, err := os.ReadFile(*image)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read image: %w", err)
		}
		req.Image = data
		req.ImageFileName = filepath.Base(*image)
	}
	res, err := client.UpdateProduct(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return res, res.Success, nil
}

func remove(ctx context.Context, client pb.ProductServiceClient, fs *flag.FlagSet, args []string) (proto.Message, bool, error) {
	id := fs.String("id", "", "product id")
	admin := fs.String("admin", "", "admin id (UUID v4)")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	res, err := client.DeleteProduct(ctx, &pb.DeleteProductRequest{Id: *id, AdminId: *admin})
	if err != nil {
		return nil, false, err
	}
	return res, res.Success, nil
}

// setFlags reports the flags given on the command line, as opposed to left at their defaults.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
