package services

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Labels that mark a photo as plausibly containing a meal.
var foodLabels = map[string]struct{}{
	"Food": {}, "Meal": {}, "Dish": {}, "Lunch": {}, "Dinner": {}, "Breakfast": {},
	"Beverage": {}, "Drink": {}, "Fruit": {}, "Vegetable": {}, "Bread": {},
	"Dessert": {}, "Plate": {}, "Snack": {},
}

// RekognitionService pre-screens inbound photos so obviously-not-food images
// never reach the expensive identification call.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

func (r *RekognitionService) LooksLikeFood(ctx context.Context, image []byte) (bool, []string, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return false, nil, externalErr("rekognition detect", err)
	}

	var labels []string
	isFood := false
	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		labels = append(labels, *l.Name)
		if _, ok := foodLabels[*l.Name]; ok {
			isFood = true
		}
	}
	return isFood, labels, nil
}
