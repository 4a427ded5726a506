package gql

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"bookcatalog/internal/book"
)

// NewSchema builds the catalog schema over the given service. Field
// resolution on Book values uses the default resolver (json tags).
func NewSchema(svc *book.Service) (graphql.Schema, error) {
	bookType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"category":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"books": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(bookType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.FindAll(p.Context)
				},
			},
			"book": &graphql.Field{
				Type: bookType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := int64(p.Args["id"].(int))
					b, err := svc.FindOne(p.Context, id)
					if err != nil {
						return nil, mapErr(id, err)
					}
					return b, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createBook": &graphql.Field{
				Type: graphql.NewNonNull(bookType),
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"category":    &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := book.CreateInput{
						Name:        p.Args["name"].(string),
						Description: p.Args["description"].(string),
					}
					if category, ok := p.Args["category"].(string); ok {
						in.Category = category
					}
					return svc.Create(p.Context, in)
				},
			},
			"updateBook": &graphql.Field{
				Type: graphql.NewNonNull(bookType),
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":        &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"category":    &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := int64(p.Args["id"].(int))
					in := book.UpdateInput{}
					if v, ok := p.Args["name"].(string); ok {
						in.Name = &v
					}
					if v, ok := p.Args["description"].(string); ok {
						in.Description = &v
					}
					if v, ok := p.Args["category"].(string); ok {
						in.Category = &v
					}
					b, err := svc.Update(p.Context, id, in)
					if err != nil {
						return nil, mapErr(id, err)
					}
					return b, nil
				},
			},
			"removeBook": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.Remove(p.Context, int64(p.Args["id"].(int)))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// mapErr hides storage errors from API consumers; not-found keeps its
// id-bearing message.
func mapErr(id int64, err error) error {
	if errors.Is(err, book.ErrNotFound) {
		return fmt.Errorf("book #%d not found", id)
	}
	return errors.New("internal server error")
}
