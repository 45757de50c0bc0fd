package domain

var (
	MessageSuccessGetFoods = "success get foods"
	MessageFailedGetFoods  = "failed to get foods"
)
