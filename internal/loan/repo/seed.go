package repo

import "github.com/loanassist-poc/server/internal/loan/model"

// SeedCustomers returns the demo customer book loaded at startup.
func SeedCustomers() []model.CustomerRecord {
	return []model.CustomerRecord{
		{
			CustomerID:       "CUST001",
			Name:             "Rahul Sharma",
			Phone:            "9876543210",
			Email:            "rahul.sharma@example.com",
			City:             "Mumbai",
			Age:              32,
			CreditScore:      785,
			PreapprovedLimit: 500000,
			Salary:           85000,
			ExistingLoans:    200000,
			Address:          "Flat 201, Sunrise Apartments, Andheri West, Mumbai",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST002",
			Name:             "Priya Patel",
			Phone:            "9876543211",
			Email:            "priya.patel@example.com",
			City:             "Delhi",
			Age:              28,
			CreditScore:      720,
			PreapprovedLimit: 300000,
			Salary:           60000,
			ExistingLoans:    150000,
			Address:          "House No. 45, GK-2, New Delhi",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST003",
			Name:             "Amit Kumar",
			Phone:            "9876543212",
			Email:            "amit.kumar@example.com",
			City:             "Bangalore",
			Age:              35,
			CreditScore:      680,
			PreapprovedLimit: 200000,
			Salary:           75000,
			ExistingLoans:    300000,
			Address:          "No. 123, Koramangala, Bangalore",
			KYCVerified:      false,
		},
		{
			CustomerID:       "CUST004",
			Name:             "Sneha Reddy",
			Phone:            "9876543213",
			Email:            "sneha.reddy@example.com",
			City:             "Hyderabad",
			Age:              29,
			CreditScore:      810,
			PreapprovedLimit: 700000,
			Salary:           95000,
			ExistingLoans:    100000,
			Address:          "Flat 301, Hitech City, Hyderabad",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST005",
			Name:             "Vikram Singh",
			Phone:            "9876543214",
			Email:            "vikram.singh@example.com",
			City:             "Pune",
			Age:              41,
			CreditScore:      650,
			PreapprovedLimit: 150000,
			Salary:           55000,
			ExistingLoans:    250000,
			Address:          "Row House, Kothrud, Pune",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST006",
			Name:             "Anjali Mehta",
			Phone:            "9876543215",
			Email:            "anjali.mehta@example.com",
			City:             "Chennai",
			Age:              31,
			CreditScore:      750,
			PreapprovedLimit: 400000,
			Salary:           80000,
			ExistingLoans:    180000,
			Address:          "Apartment 5B, T Nagar, Chennai",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST007",
			Name:             "Rajesh Gupta",
			Phone:            "9876543216",
			Email:            "rajesh.gupta@example.com",
			City:             "Kolkata",
			Age:              38,
			CreditScore:      695,
			PreapprovedLimit: 250000,
			Salary:           70000,
			ExistingLoans:    200000,
			Address:          "Salt Lake, Sector V, Kolkata",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST008",
			Name:             "Meera Iyer",
			Phone:            "9876543217",
			Email:            "meera.iyer@example.com",
			City:             "Bangalore",
			Age:              27,
			CreditScore:      730,
			PreapprovedLimit: 350000,
			Salary:           75000,
			ExistingLoans:    120000,
			Address:          "Whitefield, Bangalore",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST009",
			Name:             "Karthik Reddy",
			Phone:            "9876543218",
			Email:            "karthik.reddy@example.com",
			City:             "Mumbai",
			Age:              33,
			CreditScore:      770,
			PreapprovedLimit: 600000,
			Salary:           90000,
			ExistingLoans:    150000,
			Address:          "Powai, Mumbai",
			KYCVerified:      true,
		},
		{
			CustomerID:       "CUST010",
			Name:             "Divya Shah",
			Phone:            "9876543219",
			Email:            "divya.shah@example.com",
			City:             "Ahmedabad",
			Age:              30,
			CreditScore:      710,
			PreapprovedLimit: 320000,
			Salary:           68000,
			ExistingLoans:    140000,
			Address:          "Satellite, Ahmedabad",
			KYCVerified:      true,
		},
	}
}

// SeedOffers returns the pre-approved offers matching the seed customers.
func SeedOffers() []model.Offer {
	return []model.Offer{
		{
			OfferID:       "OFFER001",
			CustomerID:    "CUST001",
			LoanType:      "personal",
			MaxAmount:     500000,
			InterestRate:  12.5,
			TenureOptions: []int{12, 24, 36},
			ProcessingFee: 1.5,
		},
		{
			OfferID:       "OFFER002",
			CustomerID:    "CUST002",
			LoanType:      "personal",
			MaxAmount:     300000,
			InterestRate:  13.5,
			TenureOptions: []int{12, 24},
			ProcessingFee: 2.0,
		},
		{
			OfferID:       "OFFER003",
			CustomerID:    "CUST004",
			LoanType:      "personal",
			MaxAmount:     700000,
			InterestRate:  11.5,
			TenureOptions: []int{24, 36, 48},
			ProcessingFee: 1.0,
		},
		{
			OfferID:       "OFFER004",
			CustomerID:    "CUST006",
			LoanType:      "personal",
			MaxAmount:     400000,
			InterestRate:  12.0,
			TenureOptions: []int{12, 24, 36},
			ProcessingFee: 1.8,
		},
	}
}
