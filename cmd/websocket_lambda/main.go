package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	wshandlers "github.com/finsuite/erp-approvals/pkg/handlers/websockets"
	dydbstore "github.com/finsuite/erp-approvals/pkg/storage/dynamodb"
)

var handler *wshandlers.Handler

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	tablePrefix := os.Getenv("DYNAMODB_TABLE_PREFIX")
	if tablePrefix == "" {
		log.Fatal("DYNAMODB_TABLE_PREFIX environment variable not set")
	}
	store := dydbstore.New(dynamodb.NewFromConfig(cfg), dydbstore.TableNamesFromPrefix(tablePrefix))

	handler = wshandlers.NewHandler(store)
}

// HandleRequest dispatches API Gateway websocket lifecycle events by route key.
func HandleRequest(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return handler.HandleConnect(ctx, request)
	case "$disconnect":
		return handler.HandleDisconnect(ctx, request)
	default:
		return handler.HandleDefault(ctx, request)
	}
}

func main() {
	lambda.Start(HandleRequest)
}
