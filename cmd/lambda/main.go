package main

import (
	"context"
	"log"
	"projection/cmd"
	"projection/internal/logger"
	"projection/internal/util"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.FromContext(ctx).Infow(
		"lambda request",
		"method", req.HTTPMethod,
		"path", req.Path,
		"requestID", req.RequestContext.RequestID,
	)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	apiHandler, err := cmd.InitializeDependencies(*cfg)
	if err != nil {
		log.Fatal(err)
	}

	handler := lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
